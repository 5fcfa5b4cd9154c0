package domain

import (
	"strings"
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment. New appointments
// start pending and move to one of the other states when the invitee responds.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusTentative AppointmentStatus = "tentative"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusTentative:
		return true
	}
	return false
}

// RSVP choices as they appear in emailed response links.
const (
	ChoiceAccepted = "accepted"
	ChoiceDeclined = "declined"
	ChoiceMaybe    = "maybe"
)

// StatusForChoice maps an RSVP choice to its target status. The mapping is
// case-insensitive; unknown choices return false.
func StatusForChoice(choice string) (AppointmentStatus, bool) {
	switch strings.ToLower(choice) {
	case ChoiceAccepted:
		return StatusConfirmed, true
	case ChoiceDeclined:
		return StatusCancelled, true
	case ChoiceMaybe:
		return StatusTentative, true
	}
	return "", false
}

type Appointment struct {
	ID           string
	BusinessID   string
	UserID       string // owner (the business-side user who created it)
	Title        string
	InviteeEmail string
	StartTime    string // RFC 3339, stored as given
	EndTime      string
	Location     string
	Notes        string
	Status       AppointmentStatus
	RSVPToken    string // opaque capability minted at creation, never rotated
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
