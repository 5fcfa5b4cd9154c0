package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/officemate/backend/internal/api/domain"
	"github.com/officemate/backend/internal/api/store"
)

type appointmentsRepo struct {
	db dbtx
}

const appointmentColumns = `id, business_id, user_id, title, invitee_email, start_time, end_time, location, notes, status, rsvp_token, created_at, updated_at`

func (r *appointmentsRepo) CreateAppointment(ctx context.Context, a domain.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (`+appointmentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.BusinessID, a.UserID, a.Title, a.InviteeEmail, a.StartTime, a.EndTime,
		a.Location, a.Notes, string(a.Status), a.RSVPToken, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *appointmentsRepo) GetAppointment(ctx context.Context, businessID, appointmentID string) (domain.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments WHERE business_id = ? AND id = ?`, businessID, appointmentID)
	return scanAppointment(row)
}

func (r *appointmentsRepo) ListAppointmentsForBusiness(ctx context.Context, businessID string) ([]domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments WHERE business_id = ? ORDER BY created_at DESC`, businessID)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *appointmentsRepo) ListAppointmentsForUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

// UpdateAppointmentStatus only writes when the current status still matches
// expectedPrior. Zero rows affected means either the row is gone (ErrNotFound)
// or another writer moved the status first (ErrConflict); a follow-up read
// tells them apart.
func (r *appointmentsRepo) UpdateAppointmentStatus(
	ctx context.Context,
	businessID, appointmentID string,
	expectedPrior, next domain.AppointmentStatus,
	updatedAt time.Time,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments SET status = ?, updated_at = ?
		WHERE business_id = ? AND id = ? AND status = ?`,
		string(next), updatedAt, businessID, appointmentID, string(expectedPrior))
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var exists int
	err = r.db.QueryRowContext(ctx, `
		SELECT 1 FROM appointments WHERE business_id = ? AND id = ?`,
		businessID, appointmentID).Scan(&exists)
	if err != nil {
		return mapNotFound(err)
	}
	return store.ErrConflict
}

func scanAppointment(row rowScanner) (domain.Appointment, error) {
	var (
		a      domain.Appointment
		status string
	)
	err := row.Scan(&a.ID, &a.BusinessID, &a.UserID, &a.Title, &a.InviteeEmail,
		&a.StartTime, &a.EndTime, &a.Location, &a.Notes, &status, &a.RSVPToken,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Appointment{}, mapNotFound(err)
	}
	a.Status = domain.AppointmentStatus(status)
	return a, nil
}

func collectAppointments(rows *sql.Rows) ([]domain.Appointment, error) {
	defer rows.Close()

	var out []domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
