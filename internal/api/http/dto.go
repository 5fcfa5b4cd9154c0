package http

import (
	"time"

	"github.com/officemate/backend/internal/api/domain"
)

// Wire DTOs. Field names match what the frontend already consumes.

type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

type UserResponse struct {
	UserID            string `json:"userId"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	BusinessName      string `json:"businessName"`
	DefaultBusinessID string `json:"defaultBusinessId,omitempty"`
	Location          string `json:"location"`
	Phone             string `json:"phone"`
	CreatedAt         string `json:"createdAt"`
}

type BusinessResponse struct {
	BusinessID   string `json:"businessId"`
	OwnerUserID  string `json:"ownerUserId"`
	BusinessName string `json:"businessName"`
	Location     string `json:"location"`
	CreatedAt    string `json:"createdAt"`
}

type AppointmentResponse struct {
	AppointmentID string `json:"appointmentId"`
	BusinessID    string `json:"businessId"`
	UserID        string `json:"userId"`
	Title         string `json:"title"`
	InviteeEmail  string `json:"inviteeEmail"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Location      string `json:"location"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	JWKS     string `json:"jwks"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:            u.ID,
		Email:             u.Email,
		Name:              u.Name,
		BusinessName:      u.BusinessName,
		DefaultBusinessID: u.DefaultBusinessID,
		Location:          u.Location,
		Phone:             u.Phone,
		CreatedAt:         u.CreatedAt.Format(time.RFC3339),
	}
}

func toBusinessResponse(b domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:   b.ID,
		OwnerUserID:  b.OwnerUserID,
		BusinessName: b.Name,
		Location:     b.Location,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

// toAppointmentResponse deliberately omits the RSVP token: it is a bearer
// credential and only ever leaves the system inside the invitee's email.
func toAppointmentResponse(a domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		AppointmentID: a.ID,
		BusinessID:    a.BusinessID,
		UserID:        a.UserID,
		Title:         a.Title,
		InviteeEmail:  a.InviteeEmail,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Location:      a.Location,
		Notes:         a.Notes,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppointmentList(items []domain.Appointment) AppointmentListResponse {
	out := AppointmentListResponse{Items: []AppointmentResponse{}}
	for _, a := range items {
		out.Items = append(out.Items, toAppointmentResponse(a))
	}
	return out
}
