package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/officemate/backend/internal/api/domain"
	"github.com/officemate/backend/internal/api/store"
	"github.com/officemate/backend/internal/api/store/drivers/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedRSVPFixture(t *testing.T, s store.Store) domain.Appointment {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.Users().UpsertUser(ctx, domain.User{
		ID: "user-1", Email: "owner@example.com", Name: "Dr. Smith",
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, s.Businesses().CreateBusiness(ctx, domain.Business{
		ID: "biz-1", OwnerUserID: "user-1", Name: "Acme Dental",
		CreatedAt: now, UpdatedAt: now,
	}))

	appt := domain.Appointment{
		ID:           "appt-1",
		BusinessID:   "biz-1",
		UserID:       "user-1",
		Title:        "Checkup",
		InviteeEmail: "invitee@example.com",
		StartTime:    "2026-09-01T10:00:00Z",
		EndTime:      "2026-09-01T10:30:00Z",
		Status:       domain.StatusPending,
		RSVPToken:    "secret-token",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Appointments().CreateAppointment(ctx, appt))
	return appt
}

func TestApplyRSVP(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted confirms", func(t *testing.T) {
		s := newTestStore(t)
		seedRSVPFixture(t, s)
		svc := &RSVPService{Store: s}

		got, msg, err := svc.ApplyRSVP(ctx, "biz-1", "appt-1", "secret-token", "accepted")
		require.NoError(t, err)
		require.Equal(t, domain.StatusConfirmed, got.Status)
		require.Contains(t, msg, "confirmed")

		stored, err := s.Appointments().GetAppointment(ctx, "biz-1", "appt-1")
		require.NoError(t, err)
		require.Equal(t, domain.StatusConfirmed, stored.Status)
	})

	t.Run("declined cancels and maybe is tentative", func(t *testing.T) {
		s := newTestStore(t)
		seedRSVPFixture(t, s)
		svc := &RSVPService{Store: s}

		got, msg, err := svc.ApplyRSVP(ctx, "biz-1", "appt-1", "secret-token", "declined")
		require.NoError(t, err)
		require.Equal(t, domain.StatusCancelled, got.Status)
		// The confirmation names the resulting status, not the choice
		require.Contains(t, msg, "cancelled")

		got, msg, err = svc.ApplyRSVP(ctx, "biz-1", "appt-1", "secret-token", "maybe")
		require.NoError(t, err)
		require.Equal(t, domain.StatusTentative, got.Status)
		require.Contains(t, msg, "tentative")
	})

	t.Run("choice is case-insensitive", func(t *testing.T) {
		s := newTestStore(t)
		seedRSVPFixture(t, s)
		svc := &RSVPService{Store: s}

		got, _, err := svc.ApplyRSVP(ctx, "biz-1", "appt-1", "secret-token", "ACCEPTED")
		require.NoError(t, err)
		require.Equal(t, domain.StatusConfirmed, got.Status)
	})

	t.Run("repeat choice is idempotent", func(t *testing.T) {
		s := newTestStore(t)
		seedRSVPFixture(t, s)
		svc := &RSVPService{Store: s}

		_, msg1, err := svc.ApplyRSVP(ctx, "biz-1", "appt-1", "secret-token", "accepted")
		require.NoError(t, err)

		before, err := s.Appointments().GetAppointment(ctx, "biz-1", "appt-1")
		require.NoError(t, err)

		got, msg2, err := svc.ApplyRSVP(ctx, "biz-1", "appt-1", "secret-token", "accepted")
		require.NoError(t, err)
		require.Equal(t, msg1, msg2)
		require.Equal(t, domain.StatusConfirmed, got.Status)

		// No write happened on the repeat
		after, err := s.Appointments().GetAppointment(ctx, "biz-1", "appt-1")
		require.NoError(t, err)
		require.Equal(t, before.UpdatedAt, after.UpdatedAt)
	})

	t.Run("changing answer moves status again", func(t *testing.T) {
		s := newTestStore(t)
		seedRSVPFixture(t, s)
		svc := &RSVPService{Store: s}

		_, _, err := svc.ApplyRSVP(ctx, "biz-1", "appt-1", "secret-token", "maybe")
		require.NoError(t, err)

		got, _, err := svc.ApplyRSVP(ctx, "biz-1", "appt-1", "secret-token", "accepted")
		require.NoError(t, err)
		require.Equal(t, domain.StatusConfirmed, got.Status)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		s := newTestStore(t)
		seedRSVPFixture(t, s)
		svc := &RSVPService{Store: s}

		_, _, err := svc.ApplyRSVP(ctx, "biz-1", "appt-nope", "secret-token", "accepted")
		require.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("wrong business scope", func(t *testing.T) {
		s := newTestStore(t)
		seedRSVPFixture(t, s)
		svc := &RSVPService{Store: s}

		_, _, err := svc.ApplyRSVP(ctx, "biz-other", "appt-1", "secret-token", "accepted")
		require.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("wrong token", func(t *testing.T) {
		s := newTestStore(t)
		seedRSVPFixture(t, s)
		svc := &RSVPService{Store: s}

		_, _, err := svc.ApplyRSVP(ctx, "biz-1", "appt-1", "not-the-token", "accepted")
		require.ErrorIs(t, err, ErrInvalidRSVPToken)

		// Status untouched
		stored, err := s.Appointments().GetAppointment(ctx, "biz-1", "appt-1")
		require.NoError(t, err)
		require.Equal(t, domain.StatusPending, stored.Status)
	})

	t.Run("empty token never matches", func(t *testing.T) {
		s := newTestStore(t)
		seedRSVPFixture(t, s)
		svc := &RSVPService{Store: s}

		_, _, err := svc.ApplyRSVP(ctx, "biz-1", "appt-1", "", "accepted")
		require.ErrorIs(t, err, ErrInvalidRSVPToken)
	})

	t.Run("invalid choice after valid token", func(t *testing.T) {
		s := newTestStore(t)
		seedRSVPFixture(t, s)
		svc := &RSVPService{Store: s}

		_, _, err := svc.ApplyRSVP(ctx, "biz-1", "appt-1", "secret-token", "perhaps")
		require.ErrorIs(t, err, ErrInvalidChoice)
	})
}

// raceStore wedges a status change between the service's read and its
// conditional write, simulating two RSVP clicks racing.
type raceStore struct {
	store.Store
	t      *testing.T
	target domain.AppointmentStatus
	armed  bool
}

func (r *raceStore) Appointments() store.Appointments {
	return &raceAppointments{Appointments: r.Store.Appointments(), outer: r}
}

type raceAppointments struct {
	store.Appointments
	outer *raceStore
}

func (r *raceAppointments) UpdateAppointmentStatus(
	ctx context.Context,
	businessID, appointmentID string,
	expectedPrior, next domain.AppointmentStatus,
	updatedAt time.Time,
) error {
	if r.outer.armed {
		r.outer.armed = false
		// The racing click lands first with a direct write.
		err := r.outer.Store.Appointments().UpdateAppointmentStatus(
			ctx, businessID, appointmentID, expectedPrior, r.outer.target, updatedAt)
		require.NoError(r.outer.t, err)
	}
	return r.outer.Store.Appointments().UpdateAppointmentStatus(
		ctx, businessID, appointmentID, expectedPrior, next, updatedAt)
}

func TestApplyRSVPRace(t *testing.T) {
	ctx := context.Background()

	t.Run("racer applied a different status", func(t *testing.T) {
		s := newTestStore(t)
		seedRSVPFixture(t, s)
		rs := &raceStore{Store: s, t: t, target: domain.StatusCancelled, armed: true}
		svc := &RSVPService{Store: rs}

		_, _, err := svc.ApplyRSVP(ctx, "biz-1", "appt-1", "secret-token", "accepted")
		require.ErrorIs(t, err, ErrRSVPConflict)

		// The first click's answer stands.
		stored, err := s.Appointments().GetAppointment(ctx, "biz-1", "appt-1")
		require.NoError(t, err)
		require.Equal(t, domain.StatusCancelled, stored.Status)
	})

	t.Run("racer applied the same status", func(t *testing.T) {
		s := newTestStore(t)
		seedRSVPFixture(t, s)
		rs := &raceStore{Store: s, t: t, target: domain.StatusConfirmed, armed: true}
		svc := &RSVPService{Store: rs}

		got, _, err := svc.ApplyRSVP(ctx, "biz-1", "appt-1", "secret-token", "accepted")
		require.NoError(t, err, "same target status must resolve as success")
		require.Equal(t, domain.StatusConfirmed, got.Status)
	})
}
