package service

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/officemate/backend/internal/api/domain"
	"github.com/officemate/backend/internal/api/email"
)

// NotificationService renders the appointment invite email with its RSVP
// links. Delivery goes through whatever Sender the app wired in.
type NotificationService struct {
	Sender email.Sender

	// RSVPBaseURL is the public frontend origin the links point at, e.g.
	// "https://app.example.com". Empty disables RSVP links (the invite is
	// still sent, purely informational).
	RSVPBaseURL string
}

// AppointmentInvite renders the invite for an appointment. providerName is
// the display name of the user who created it.
func (s *NotificationService) AppointmentInvite(appt domain.Appointment, providerName string) email.Message {
	if providerName == "" {
		providerName = "your provider"
	}
	title := appt.Title
	if title == "" {
		title = "Appointment"
	}

	dateStr, startStr, endStr := formatAppointmentTimes(appt.StartTime, appt.EndTime)

	var acceptURL, declineURL, maybeURL string
	if s.RSVPBaseURL != "" && appt.RSVPToken != "" {
		acceptURL = s.rsvpURL(appt, domain.ChoiceAccepted)
		declineURL = s.rsvpURL(appt, domain.ChoiceDeclined)
		maybeURL = s.rsvpURL(appt, domain.ChoiceMaybe)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hi,\n\n")
	fmt.Fprintf(&text, "You have an appointment titled %q with %s on %s from %s to %s.\n",
		title, providerName, dateStr, startStr, endStr)
	if acceptURL != "" {
		fmt.Fprintf(&text, "\nPlease confirm your attendance:\n")
		fmt.Fprintf(&text, "Accept: %s\n", acceptURL)
		fmt.Fprintf(&text, "Decline: %s\n", declineURL)
		fmt.Fprintf(&text, "Maybe: %s\n", maybeURL)
	}
	fmt.Fprintf(&text, "\nIf you have any questions, please reply to this email.\n\nBest,\nOfficeMate\n")

	var rsvpHTML string
	if acceptURL != "" {
		rsvpHTML = fmt.Sprintf(
			`<p>Please confirm your attendance:</p><p>`+
				`<a href="%s" style="padding:8px 14px;background:#16a34a;color:#ffffff;text-decoration:none;border-radius:6px;margin-right:8px;">Accept</a>`+
				`<a href="%s" style="padding:8px 14px;background:#dc2626;color:#ffffff;text-decoration:none;border-radius:6px;margin-right:8px;">Decline</a>`+
				`<a href="%s" style="padding:8px 14px;background:#eab308;color:#111827;text-decoration:none;border-radius:6px;">Maybe</a>`+
				`</p>`,
			acceptURL, declineURL, maybeURL)
	}

	// Title and provider name are caller-supplied; escape them so they
	// cannot inject markup into the invitee's email.
	htmlBody := fmt.Sprintf(
		`<p>Hi,</p>`+
			`<p>You have an appointment titled <strong>%s</strong> with <strong>%s</strong>.</p>`+
			`<p><strong>Date</strong>: %s<br><strong>Time</strong>: %s to %s</p>`+
			`%s`+
			`<p>If you have any questions, please reply to this email.</p>`+
			`<p>Best,<br>OfficeMate</p>`,
		html.EscapeString(title), html.EscapeString(providerName),
		dateStr, startStr, endStr, rsvpHTML)

	return email.Message{
		To:       appt.InviteeEmail,
		Subject:  "Appointment confirmation: " + title,
		TextBody: text.String(),
		HTMLBody: htmlBody,
	}
}

func (s *NotificationService) rsvpURL(appt domain.Appointment, choice string) string {
	q := url.Values{}
	q.Set("businessId", appt.BusinessID)
	q.Set("appointmentId", appt.ID)
	q.Set("token", appt.RSVPToken)
	q.Set("choice", choice)
	return strings.TrimRight(s.RSVPBaseURL, "/") + "/appointments/rsvp?" + q.Encode()
}

// formatAppointmentTimes renders RFC 3339 start/end into the email's human
// form. Unparseable values fall back to the raw strings so a bad client
// payload degrades the email, not the send.
func formatAppointmentTimes(start, end string) (dateStr, startStr, endStr string) {
	dateStr, startStr, endStr = start, start, end

	if t, err := time.Parse(time.RFC3339, start); err == nil {
		dateStr = t.Format("Monday, January 2, 2006")
		startStr = t.Format("3:04 PM")
	}
	if t, err := time.Parse(time.RFC3339, end); err == nil {
		endStr = t.Format("3:04 PM")
	}
	return dateStr, startStr, endStr
}
