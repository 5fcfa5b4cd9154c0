package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/officemate/backend/internal/api/domain"
	"github.com/officemate/backend/internal/api/store"
	"github.com/officemate/backend/pkg/cryptox"
	"github.com/officemate/backend/pkg/idx"
	"github.com/officemate/backend/pkg/slogx"
)

var (
	ErrNoDefaultBusiness = errors.New("no_default_business")
	ErrInvalidInput      = errors.New("invalid_input")
)

// rsvpTokenBytes sizes the opaque RSVP token (256 bits of entropy).
const rsvpTokenBytes = 32

type CreateAppointmentInput struct {
	Title        string
	InviteeEmail string
	StartTime    string
	EndTime      string
	Location     string
	Notes        string
}

type AppointmentService struct {
	Store    store.Store
	Notifier *NotificationService
}

// Create books an appointment under the caller's default business and emails
// the invitee. The email is best-effort: a delivery failure is logged but the
// booking stands.
func (s *AppointmentService) Create(ctx context.Context, userID string, in CreateAppointmentInput) (domain.Appointment, error) {
	l := slogx.FromContext(ctx)

	in.Title = strings.TrimSpace(in.Title)
	in.InviteeEmail = strings.TrimSpace(in.InviteeEmail)
	if in.Title == "" || in.InviteeEmail == "" || in.StartTime == "" || in.EndTime == "" {
		return domain.Appointment{}, ErrInvalidInput
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, ErrUserNotFound
		}
		return domain.Appointment{}, err
	}
	if user.DefaultBusinessID == "" {
		return domain.Appointment{}, ErrNoDefaultBusiness
	}

	token, err := cryptox.GenerateToken(rsvpTokenBytes)
	if err != nil {
		return domain.Appointment{}, err
	}

	now := time.Now().UTC()
	appt := domain.Appointment{
		ID:           string(idx.New()),
		BusinessID:   user.DefaultBusinessID,
		UserID:       userID,
		Title:        in.Title,
		InviteeEmail: in.InviteeEmail,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Location:     strings.TrimSpace(in.Location),
		Notes:        strings.TrimSpace(in.Notes),
		Status:       domain.StatusPending,
		RSVPToken:    token,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Appointments().CreateAppointment(ctx, appt); err != nil {
		return domain.Appointment{}, err
	}

	if s.Notifier != nil {
		msg := s.Notifier.AppointmentInvite(appt, user.Name)
		if err := s.Notifier.Sender.Send(ctx, msg); err != nil {
			l.Error("appointment invite email failed",
				slog.String("appointment_id", appt.ID),
				slog.String("err", err.Error()),
			)
		}
	}

	l.Info("appointment created",
		slog.String("appointment_id", appt.ID),
		slog.String("business_id", appt.BusinessID),
	)
	return appt, nil
}

// ListForCaller returns the appointments of the caller's default business.
func (s *AppointmentService) ListForCaller(ctx context.Context, userID string) ([]domain.Appointment, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.DefaultBusinessID == "" {
		return nil, ErrNoDefaultBusiness
	}
	return s.Store.Appointments().ListAppointmentsForBusiness(ctx, user.DefaultBusinessID)
}

// ListForUser returns appointments the user created, across businesses.
func (s *AppointmentService) ListForUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	return s.Store.Appointments().ListAppointmentsForUser(ctx, userID)
}
