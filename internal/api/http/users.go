package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/officemate/backend/internal/api/service"
	"github.com/officemate/backend/pkg/httpx"
	"github.com/officemate/backend/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleMe returns the caller's profile.
//
//	@Summary		Get own profile
//	@Description	Returns the profile record for the authenticated subject.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	ErrorResponse	"No profile yet; call bootstrap first"
//	@Router			/v1/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "")
		return
	}

	user, err := h.UserService.GetByID(ctx, p.SubjectID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "user_not_found", "User not found")
			return
		}
		log.Error("load user failed", "user_id", p.SubjectID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

type bootstrapRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
	Location     string `json:"location"`
	Phone        string `json:"phone"`
}

// HandleBootstrap upserts the caller's profile after login.
//
//	@Summary		Bootstrap profile
//	@Description	Creates or refreshes the profile record for the authenticated
//	@Description	subject. The frontend calls this after every fresh login.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bootstrapRequest	true	"Profile fields"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse	"Malformed body"
//	@Failure		401		{object}	ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/users/bootstrap [post].
func (h *UsersHandler) HandleBootstrap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "")
		return
	}

	var req bootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	user, err := h.UserService.Bootstrap(ctx, p.SubjectID, service.BootstrapInput{
		Email:        req.Email,
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Location:     req.Location,
		Phone:        req.Phone,
	})
	if err != nil {
		log.Error("bootstrap failed", "user_id", p.SubjectID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
