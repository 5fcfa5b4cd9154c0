package sqlite

import (
	"context"

	"github.com/officemate/backend/internal/api/domain"
)

type businessesRepo struct {
	db dbtx
}

func (r *businessesRepo) GetBusinessByID(ctx context.Context, id string) (domain.Business, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_user_id, name, location, created_at, updated_at
		FROM businesses WHERE id = ?`, id)

	var b domain.Business
	err := row.Scan(&b.ID, &b.OwnerUserID, &b.Name, &b.Location, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.Business{}, mapNotFound(err)
	}
	return b, nil
}

func (r *businessesRepo) CreateBusiness(ctx context.Context, b domain.Business) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO businesses (id, owner_user_id, name, location, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.OwnerUserID, b.Name, b.Location, b.CreatedAt, b.UpdatedAt)
	return err
}

func (r *businessesRepo) ListBusinessesForOwner(ctx context.Context, ownerUserID string) ([]domain.Business, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_user_id, name, location, created_at, updated_at
		FROM businesses WHERE owner_user_id = ? ORDER BY created_at DESC`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Business
	for rows.Next() {
		var b domain.Business
		if err := rows.Scan(&b.ID, &b.OwnerUserID, &b.Name, &b.Location, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
