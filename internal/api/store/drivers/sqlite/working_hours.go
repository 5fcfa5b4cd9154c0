package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/officemate/backend/internal/api/domain"
	"github.com/officemate/backend/internal/api/store"
)

// workingHoursRepo stores the schedule as a JSON document on the user row,
// same shape the API exchanges. The schedule is always read and written
// whole, so there is nothing to gain from normalising it.
type workingHoursRepo struct {
	db dbtx
}

func (r *workingHoursRepo) GetWorkingHours(ctx context.Context, userID string) (domain.WorkingHours, error) {
	var doc sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT working_hours FROM users WHERE id = ?`, userID).Scan(&doc)
	if err != nil {
		return domain.WorkingHours{}, mapNotFound(err)
	}
	if !doc.Valid {
		return domain.WorkingHours{}, store.ErrNotFound
	}

	var wh domain.WorkingHours
	if err := json.Unmarshal([]byte(doc.String), &wh); err != nil {
		return domain.WorkingHours{}, err
	}
	return wh, nil
}

func (r *workingHoursRepo) SaveWorkingHours(ctx context.Context, userID string, wh domain.WorkingHours, updatedAt time.Time) error {
	doc, err := json.Marshal(wh)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET working_hours = ?, updated_at = ? WHERE id = ?`,
		string(doc), updatedAt, userID)
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
