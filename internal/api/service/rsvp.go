package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/officemate/backend/internal/api/domain"
	"github.com/officemate/backend/internal/api/store"
	"github.com/officemate/backend/pkg/cryptox"
	"github.com/officemate/backend/pkg/slogx"
)

var (
	ErrAppointmentNotFound = errors.New("appointment_not_found")
	ErrInvalidRSVPToken    = errors.New("invalid_rsvp_token")
	ErrInvalidChoice       = errors.New("invalid_choice")
	ErrRSVPConflict        = errors.New("rsvp_conflict")
)

// RSVPService applies invitee responses from emailed links. The link token is
// the sole credential; the endpoint is otherwise unauthenticated.
type RSVPService struct {
	Store store.Store
}

// ApplyRSVP validates the presented token and moves the appointment to the
// status the choice maps to. Responding again with the same choice is an
// idempotent success. A race between two different responses resolves to
// whichever write landed first; the loser gets ErrRSVPConflict.
func (s *RSVPService) ApplyRSVP(
	ctx context.Context,
	businessID, appointmentID, presentedToken, choice string,
) (domain.Appointment, string, error) {
	l := slogx.FromContext(ctx)

	appt, err := s.Store.Appointments().GetAppointment(ctx, businessID, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, "", ErrAppointmentNotFound
		}
		return domain.Appointment{}, "", err
	}

	// An appointment without a stored token predates RSVP links and can
	// never match; same rejection as a wrong token.
	if appt.RSVPToken == "" || !cryptox.TokensEqual(appt.RSVPToken, presentedToken) {
		l.Info("rsvp token mismatch",
			slog.String("business_id", businessID),
			slog.String("appointment_id", appointmentID),
		)
		return domain.Appointment{}, "", ErrInvalidRSVPToken
	}

	next, ok := domain.StatusForChoice(choice)
	if !ok {
		return domain.Appointment{}, "", ErrInvalidChoice
	}

	if appt.Status == next {
		// Repeat click on the same link, nothing to write.
		return appt, rsvpMessage(next), nil
	}

	now := time.Now().UTC()
	err = s.Store.Appointments().UpdateAppointmentStatus(ctx, businessID, appointmentID, appt.Status, next, now)
	switch {
	case err == nil:
		appt.Status = next
		appt.UpdatedAt = now
		l.Info("rsvp applied",
			slog.String("appointment_id", appointmentID),
			slog.String("status", string(next)),
		)
		return appt, rsvpMessage(next), nil

	case errors.Is(err, store.ErrConflict):
		// Someone else moved the status first. If they landed on the same
		// target this response is still a success.
		current, readErr := s.Store.Appointments().GetAppointment(ctx, businessID, appointmentID)
		if readErr != nil {
			if errors.Is(readErr, store.ErrNotFound) {
				return domain.Appointment{}, "", ErrAppointmentNotFound
			}
			return domain.Appointment{}, "", readErr
		}
		if current.Status == next {
			return current, rsvpMessage(next), nil
		}
		return domain.Appointment{}, "", ErrRSVPConflict

	case errors.Is(err, store.ErrNotFound):
		return domain.Appointment{}, "", ErrAppointmentNotFound

	default:
		return domain.Appointment{}, "", err
	}
}

func rsvpMessage(status domain.AppointmentStatus) string {
	switch status {
	case domain.StatusConfirmed:
		return "Thanks, your appointment is confirmed."
	case domain.StatusCancelled:
		return "Your appointment has been cancelled."
	case domain.StatusTentative:
		return "Noted, your appointment is marked as tentative."
	}
	return fmt.Sprintf("Your appointment is now %s.", status)
}
