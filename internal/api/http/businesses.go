package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/officemate/backend/internal/api/service"
	"github.com/officemate/backend/pkg/httpx"
	"github.com/officemate/backend/pkg/slogx"
)

type BusinessesHandler struct {
	BusinessService *service.BusinessService
}

type createBusinessRequest struct {
	BusinessName string `json:"businessName"`
	Location     string `json:"location"`
}

// HandleCreate registers a business for the caller.
//
//	@Summary		Create business
//	@Description	Registers a business owned by the caller and makes it their
//	@Description	default business.
//	@Tags			Businesses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createBusinessRequest	true	"Business fields"
//	@Success		200		{object}	BusinessResponse
//	@Failure		400		{object}	ErrorResponse	"Malformed body or blank name"
//	@Failure		401		{object}	ErrorResponse	"Invalid or missing access token"
//	@Failure		404		{object}	ErrorResponse	"No profile yet; call bootstrap first"
//	@Router			/v1/businesses [post].
func (h *BusinessesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "")
		return
	}

	var req createBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	biz, err := h.BusinessService.CreateForUser(ctx, p.SubjectID, service.CreateBusinessInput{
		Name:     req.BusinessName,
		Location: req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "businessName is required")
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, "user_not_found", "User not found")
		default:
			log.Error("create business failed", "user_id", p.SubjectID, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toBusinessResponse(biz))
}

// HandleList returns the caller's businesses.
//
//	@Summary		List businesses
//	@Description	Returns businesses owned by the caller, newest first.
//	@Tags			Businesses
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		BusinessResponse
//	@Failure		401	{object}	ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/businesses [get].
func (h *BusinessesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "")
		return
	}

	list, err := h.BusinessService.ListForUser(ctx, p.SubjectID)
	if err != nil {
		log.Error("list businesses failed", "user_id", p.SubjectID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		return
	}

	out := make([]BusinessResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBusinessResponse(b))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
