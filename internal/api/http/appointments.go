package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/officemate/backend/internal/api/service"
	"github.com/officemate/backend/pkg/httpx"
	"github.com/officemate/backend/pkg/slogx"
)

type AppointmentsHandler struct {
	AppointmentService *service.AppointmentService
}

type createAppointmentRequest struct {
	Title     string `json:"title"`
	Email     string `json:"email"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location"`
	Notes     string `json:"notes"`
}

// HandleCreate books an appointment under the caller's default business.
//
//	@Summary		Create appointment
//	@Description	Books an appointment under the caller's default business and
//	@Description	emails the invitee an RSVP link. Status starts as pending.
//	@Tags			Appointments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createAppointmentRequest	true	"Appointment fields"
//	@Success		200		{object}	AppointmentResponse
//	@Failure		400		{object}	ErrorResponse	"Missing fields or no default business"
//	@Failure		401		{object}	ErrorResponse	"Invalid or missing access token"
//	@Failure		404		{object}	ErrorResponse	"No profile yet; call bootstrap first"
//	@Router			/v1/appointments [post].
func (h *AppointmentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "")
		return
	}

	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	appt, err := h.AppointmentService.Create(ctx, p.SubjectID, service.CreateAppointmentInput{
		Title:        req.Title,
		InviteeEmail: req.Email,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Location:     req.Location,
		Notes:        req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
				"title, email, start_time and end_time are required")
		case errors.Is(err, service.ErrNoDefaultBusiness):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
				"User has no default business configured")
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, "user_not_found", "User not found")
		default:
			log.Error("create appointment failed", "user_id", p.SubjectID, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAppointmentResponse(appt))
}

// HandleList returns the caller's default business appointments.
//
//	@Summary		List appointments
//	@Description	Returns appointments of the caller's default business, newest first.
//	@Tags			Appointments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	AppointmentListResponse
//	@Failure		400	{object}	ErrorResponse	"No default business"
//	@Failure		401	{object}	ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	ErrorResponse	"No profile yet; call bootstrap first"
//	@Router			/v1/appointments [get].
func (h *AppointmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "")
		return
	}

	list, err := h.AppointmentService.ListForCaller(ctx, p.SubjectID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoDefaultBusiness):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
				"User has no default business configured")
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, "user_not_found", "User not found")
		default:
			log.Error("list appointments failed", "user_id", p.SubjectID, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAppointmentList(list))
}
