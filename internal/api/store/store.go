package store

import (
	"context"
	"errors"
	"time"

	"github.com/officemate/backend/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports a conditional write that found a different state
	// than the caller observed. The record exists; its status moved.
	ErrConflict = errors.New("store: conflicting update")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	Businesses() Businesses
	Appointments() Appointments
	WorkingHours() WorkingHours

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. fn returning an error rolls
	// back; nil commits. Preferred over Tx for most callers.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by the identity provider subject.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// UpsertUser inserts the user or refreshes its mutable profile fields.
	// Used by bootstrap, which runs on every fresh login.
	UpsertUser(ctx context.Context, u domain.User) error

	// SetDefaultBusiness points the user at their primary business.
	SetDefaultBusiness(ctx context.Context, userID, businessID string, updatedAt time.Time) error
}

type Businesses interface {
	// GetBusinessByID returns a business by id.
	GetBusinessByID(ctx context.Context, id string) (domain.Business, error)

	// CreateBusiness inserts a new business (id is provided by app via ULID).
	CreateBusiness(ctx context.Context, b domain.Business) error

	// ListBusinessesForOwner returns businesses owned by the user, newest first.
	ListBusinessesForOwner(ctx context.Context, ownerUserID string) ([]domain.Business, error)
}

type Appointments interface {
	// CreateAppointment inserts a new appointment (id is ULID, status pending).
	CreateAppointment(ctx context.Context, a domain.Appointment) error

	// GetAppointment returns an appointment scoped to its business.
	GetAppointment(ctx context.Context, businessID, appointmentID string) (domain.Appointment, error)

	// ListAppointmentsForBusiness returns a business's appointments, newest first.
	ListAppointmentsForBusiness(ctx context.Context, businessID string) ([]domain.Appointment, error)

	// ListAppointmentsForUser returns appointments created by the user, newest first.
	ListAppointmentsForUser(ctx context.Context, userID string) ([]domain.Appointment, error)

	// UpdateAppointmentStatus is a compare-and-swap write: the status column
	// is changed only if it still equals expectedPrior. When the row exists
	// but the status moved underneath the caller, it returns ErrConflict.
	UpdateAppointmentStatus(ctx context.Context, businessID, appointmentID string, expectedPrior, next domain.AppointmentStatus, updatedAt time.Time) error
}

type WorkingHours interface {
	// GetWorkingHours returns the user's saved schedule, ErrNotFound when unset.
	GetWorkingHours(ctx context.Context, userID string) (domain.WorkingHours, error)

	// SaveWorkingHours replaces the user's schedule document.
	SaveWorkingHours(ctx context.Context, userID string, wh domain.WorkingHours, updatedAt time.Time) error
}
