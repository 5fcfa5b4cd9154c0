package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/officemate/backend/internal/api/domain"
	"github.com/officemate/backend/internal/api/email"
	"github.com/officemate/backend/internal/api/store"
)

// captureSender records messages instead of delivering them.
type captureSender struct {
	sent []email.Message
	err  error
}

func (c *captureSender) Send(_ context.Context, msg email.Message) error {
	c.sent = append(c.sent, msg)
	return c.err
}

func seedUserWithBusiness(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.Users().UpsertUser(ctx, domain.User{
		ID: "user-1", Email: "owner@example.com", Name: "Dr. Smith",
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, s.Businesses().CreateBusiness(ctx, domain.Business{
		ID: "biz-1", OwnerUserID: "user-1", Name: "Acme Dental",
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, s.Users().SetDefaultBusiness(ctx, "user-1", "biz-1", now))
}

func TestAppointmentCreate(t *testing.T) {
	ctx := context.Background()

	input := CreateAppointmentInput{
		Title:        "  Checkup  ",
		InviteeEmail: "invitee@example.com",
		StartTime:    "2026-09-01T10:00:00Z",
		EndTime:      "2026-09-01T10:30:00Z",
		Notes:        "bring records",
	}

	t.Run("creates pending appointment with token and emails invitee", func(t *testing.T) {
		s := newTestStore(t)
		seedUserWithBusiness(t, s)
		sender := &captureSender{}
		svc := &AppointmentService{
			Store: s,
			Notifier: &NotificationService{
				Sender:      sender,
				RSVPBaseURL: "https://app.example.com",
			},
		}

		appt, err := svc.Create(ctx, "user-1", input)
		require.NoError(t, err)
		require.Equal(t, "Checkup", appt.Title)
		require.Equal(t, "biz-1", appt.BusinessID)
		require.Equal(t, domain.StatusPending, appt.Status)
		require.NotEmpty(t, appt.ID)
		require.NotEmpty(t, appt.RSVPToken)

		stored, err := s.Appointments().GetAppointment(ctx, "biz-1", appt.ID)
		require.NoError(t, err)
		require.Equal(t, appt.RSVPToken, stored.RSVPToken)

		require.Len(t, sender.sent, 1)
		msg := sender.sent[0]
		require.Equal(t, "invitee@example.com", msg.To)
		require.Contains(t, msg.Subject, "Checkup")
		require.Contains(t, msg.TextBody, "Dr. Smith")
		require.Contains(t, msg.TextBody, appt.RSVPToken)
		require.Contains(t, msg.TextBody, "choice=accepted")
		require.Contains(t, msg.HTMLBody, "choice=declined")
		require.Contains(t, msg.HTMLBody, "choice=maybe")
	})

	t.Run("invite escapes markup in title and provider name", func(t *testing.T) {
		notifier := &NotificationService{
			Sender:      &captureSender{},
			RSVPBaseURL: "https://app.example.com",
		}

		msg := notifier.AppointmentInvite(domain.Appointment{
			ID:           "appt-1",
			BusinessID:   "biz-1",
			Title:        `<script>alert(1)</script>`,
			InviteeEmail: "invitee@example.com",
			RSVPToken:    "tok",
		}, `Dr. <b>Smith</b>`)

		require.NotContains(t, msg.HTMLBody, "<script>")
		require.NotContains(t, msg.HTMLBody, "<b>Smith</b>")
		require.Contains(t, msg.HTMLBody, "&lt;script&gt;")
	})

	t.Run("tokens are unique per appointment", func(t *testing.T) {
		s := newTestStore(t)
		seedUserWithBusiness(t, s)
		svc := &AppointmentService{Store: s}

		a1, err := svc.Create(ctx, "user-1", input)
		require.NoError(t, err)
		a2, err := svc.Create(ctx, "user-1", input)
		require.NoError(t, err)
		require.NotEqual(t, a1.RSVPToken, a2.RSVPToken)
	})

	t.Run("email failure does not fail the booking", func(t *testing.T) {
		s := newTestStore(t)
		seedUserWithBusiness(t, s)
		sender := &captureSender{err: context.DeadlineExceeded}
		svc := &AppointmentService{
			Store:    s,
			Notifier: &NotificationService{Sender: sender},
		}

		appt, err := svc.Create(ctx, "user-1", input)
		require.NoError(t, err)

		_, err = s.Appointments().GetAppointment(ctx, "biz-1", appt.ID)
		require.NoError(t, err)
	})

	t.Run("no default business", func(t *testing.T) {
		s := newTestStore(t)
		now := time.Now().UTC()
		require.NoError(t, s.Users().UpsertUser(ctx, domain.User{
			ID: "user-2", Email: "b@example.com", CreatedAt: now, UpdatedAt: now,
		}))
		svc := &AppointmentService{Store: s}

		_, err := svc.Create(ctx, "user-2", input)
		require.ErrorIs(t, err, ErrNoDefaultBusiness)
	})

	t.Run("unknown user", func(t *testing.T) {
		s := newTestStore(t)
		svc := &AppointmentService{Store: s}

		_, err := svc.Create(ctx, "user-nope", input)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("missing fields", func(t *testing.T) {
		s := newTestStore(t)
		seedUserWithBusiness(t, s)
		svc := &AppointmentService{Store: s}

		_, err := svc.Create(ctx, "user-1", CreateAppointmentInput{Title: "x"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAppointmentListForCaller(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUserWithBusiness(t, s)
	svc := &AppointmentService{Store: s}

	_, err := svc.Create(ctx, "user-1", CreateAppointmentInput{
		Title: "A", InviteeEmail: "a@example.com",
		StartTime: "2026-09-01T10:00:00Z", EndTime: "2026-09-01T11:00:00Z",
	})
	require.NoError(t, err)

	list, err := svc.ListForCaller(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	t.Run("no default business", func(t *testing.T) {
		now := time.Now().UTC()
		require.NoError(t, s.Users().UpsertUser(ctx, domain.User{
			ID: "user-2", Email: "b@example.com", CreatedAt: now, UpdatedAt: now,
		}))
		_, err := svc.ListForCaller(ctx, "user-2")
		require.ErrorIs(t, err, ErrNoDefaultBusiness)
	})
}

func TestUserBootstrap(t *testing.T) {
	ctx := context.Background()

	t.Run("first login creates the record", func(t *testing.T) {
		s := newTestStore(t)
		svc := &UserService{Store: s}

		u, err := svc.Bootstrap(ctx, "sub-1", BootstrapInput{
			Email: "alice@example.com", Name: "Alice",
		})
		require.NoError(t, err)
		require.Equal(t, "sub-1", u.ID)
		require.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("empty fields keep existing values", func(t *testing.T) {
		s := newTestStore(t)
		svc := &UserService{Store: s}

		_, err := svc.Bootstrap(ctx, "sub-1", BootstrapInput{
			Email: "alice@example.com", Name: "Alice", Phone: "555-0101",
		})
		require.NoError(t, err)

		u, err := svc.Bootstrap(ctx, "sub-1", BootstrapInput{Email: "alice@example.com"})
		require.NoError(t, err)
		require.Equal(t, "Alice", u.Name)
		require.Equal(t, "555-0101", u.Phone)
	})

	t.Run("default business survives bootstrap", func(t *testing.T) {
		s := newTestStore(t)
		users := &UserService{Store: s}
		businesses := &BusinessService{Store: s}

		_, err := users.Bootstrap(ctx, "sub-1", BootstrapInput{Email: "alice@example.com"})
		require.NoError(t, err)
		_, err = businesses.CreateForUser(ctx, "sub-1", CreateBusinessInput{Name: "Acme"})
		require.NoError(t, err)

		u, err := users.Bootstrap(ctx, "sub-1", BootstrapInput{Email: "alice@example.com"})
		require.NoError(t, err)
		require.NotEmpty(t, u.DefaultBusinessID)
	})
}

func TestBusinessCreateForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and sets default", func(t *testing.T) {
		s := newTestStore(t)
		users := &UserService{Store: s}
		svc := &BusinessService{Store: s}

		_, err := users.Bootstrap(ctx, "sub-1", BootstrapInput{
			Email: "alice@example.com", Location: "Portland",
		})
		require.NoError(t, err)

		biz, err := svc.CreateForUser(ctx, "sub-1", CreateBusinessInput{Name: "Acme"})
		require.NoError(t, err)
		require.Equal(t, "Portland", biz.Location, "falls back to the owner's location")

		u, err := users.GetByID(ctx, "sub-1")
		require.NoError(t, err)
		require.Equal(t, biz.ID, u.DefaultBusinessID)

		list, err := svc.ListForUser(ctx, "sub-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("unknown user", func(t *testing.T) {
		s := newTestStore(t)
		svc := &BusinessService{Store: s}

		_, err := svc.CreateForUser(ctx, "sub-nope", CreateBusinessInput{Name: "Acme"})
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("blank name", func(t *testing.T) {
		s := newTestStore(t)
		svc := &BusinessService{Store: s}

		_, err := svc.CreateForUser(ctx, "sub-1", CreateBusinessInput{Name: "   "})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestWorkingHoursService(t *testing.T) {
	ctx := context.Background()

	t.Run("default when unset", func(t *testing.T) {
		s := newTestStore(t)
		users := &UserService{Store: s}
		svc := &WorkingHoursService{Store: s}

		_, err := users.Bootstrap(ctx, "sub-1", BootstrapInput{Email: "a@example.com"})
		require.NoError(t, err)

		wh, err := svc.Get(ctx, "sub-1")
		require.NoError(t, err)
		require.Equal(t, domain.DefaultWorkingHours(), wh)
	})

	t.Run("save round trip", func(t *testing.T) {
		s := newTestStore(t)
		users := &UserService{Store: s}
		svc := &WorkingHoursService{Store: s}

		_, err := users.Bootstrap(ctx, "sub-1", BootstrapInput{Email: "a@example.com"})
		require.NoError(t, err)

		wh := domain.DefaultWorkingHours()
		wh.Weekly[0].Enabled = true // open Sundays
		_, err = svc.Save(ctx, "sub-1", wh)
		require.NoError(t, err)

		got, err := svc.Get(ctx, "sub-1")
		require.NoError(t, err)
		require.Equal(t, wh, got)
	})

	t.Run("invalid schedule rejected", func(t *testing.T) {
		s := newTestStore(t)
		svc := &WorkingHoursService{Store: s}

		wh := domain.DefaultWorkingHours()
		wh.Weekly[1].Start = "bad"
		_, err := svc.Save(ctx, "sub-1", wh)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("save for unknown user", func(t *testing.T) {
		s := newTestStore(t)
		svc := &WorkingHoursService{Store: s}

		_, err := svc.Save(ctx, "sub-nope", domain.DefaultWorkingHours())
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
