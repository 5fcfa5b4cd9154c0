package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/officemate/backend/internal/api/domain"
	"github.com/officemate/backend/internal/api/service"
	"github.com/officemate/backend/pkg/httpx"
	"github.com/officemate/backend/pkg/slogx"
)

type WorkingHoursHandler struct {
	WorkingHoursService *service.WorkingHoursService
}

// HandleGet returns the caller's schedule.
//
//	@Summary		Get working hours
//	@Description	Returns the caller's availability schedule. Falls back to the
//	@Description	default Monday-Friday 09:00-17:00 week when none is saved.
//	@Tags			WorkingHours
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.WorkingHours
//	@Failure		401	{object}	ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/working-hours/me [get].
func (h *WorkingHoursHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "")
		return
	}

	wh, err := h.WorkingHoursService.Get(ctx, p.SubjectID)
	if err != nil {
		log.Error("get working hours failed", "user_id", p.SubjectID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, wh)
}

// HandleSave replaces the caller's schedule.
//
//	@Summary		Save working hours
//	@Description	Validates and replaces the caller's availability schedule.
//	@Tags			WorkingHours
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.WorkingHours	true	"Schedule document"
//	@Success		200		{object}	domain.WorkingHours
//	@Failure		400		{object}	ErrorResponse	"Schedule fails validation"
//	@Failure		401		{object}	ErrorResponse	"Invalid or missing access token"
//	@Failure		404		{object}	ErrorResponse	"No profile yet; call bootstrap first"
//	@Router			/v1/working-hours/me [put].
func (h *WorkingHoursHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "")
		return
	}

	var wh domain.WorkingHours
	if err := json.NewDecoder(r.Body).Decode(&wh); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	saved, err := h.WorkingHoursService.Save(ctx, p.SubjectID, wh)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, "user_not_found", "User not found")
		default:
			log.Error("save working hours failed", "user_id", p.SubjectID, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, saved)
}
