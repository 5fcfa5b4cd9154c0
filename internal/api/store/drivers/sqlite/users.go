package sqlite

import (
	"context"
	"time"

	"github.com/officemate/backend/internal/api/domain"
	"github.com/officemate/backend/internal/api/store"
)

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, business_name, default_business_id, location, phone, created_at, updated_at
		FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) UpsertUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, business_name, default_business_id, location, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email      = excluded.email,
			name       = excluded.name,
			location   = excluded.location,
			phone      = excluded.phone,
			updated_at = excluded.updated_at`,
		u.ID, u.Email, u.Name, u.BusinessName, mapStringNull(u.DefaultBusinessID),
		u.Location, u.Phone, u.CreatedAt, u.UpdatedAt)
	return err
}

func (r *usersRepo) SetDefaultBusiness(ctx context.Context, userID, businessID string, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET default_business_id = ?, updated_at = ? WHERE id = ?`,
		businessID, updatedAt, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u          domain.User
		defaultBiz = mapStringNull("")
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.BusinessName, &defaultBiz,
		&u.Location, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.DefaultBusinessID = mapNullString(defaultBiz)
	return u, nil
}
