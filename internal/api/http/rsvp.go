package http

import (
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/officemate/backend/internal/api/service"
	"github.com/officemate/backend/pkg/httpx"
	"github.com/officemate/backend/pkg/slogx"
)

// RSVPHandler serves the links from invite emails. It renders plain HTML
// since the recipient lands here straight from their mail client, without
// the frontend app.
type RSVPHandler struct {
	RSVPService *service.RSVPService
}

// ServeHTTP applies an RSVP response.
//
//	@Summary		Respond to an appointment invite
//	@Description	Applies the RSVP choice carried by an emailed link and renders
//	@Description	a small confirmation page. The token query parameter is the
//	@Description	only credential.
//	@Tags			Appointments
//	@Produce		html
//	@Param			businessId		query	string	true	"Business id"
//	@Param			appointmentId	query	string	true	"Appointment id"
//	@Param			token			query	string	true	"RSVP token from the email"
//	@Param			choice			query	string	true	"accepted, declined or maybe"
//	@Success		200	{string}	string	"Confirmation page"
//	@Failure		400	{string}	string	"Missing parameters, bad token or unknown choice"
//	@Failure		404	{string}	string	"Unknown appointment"
//	@Failure		409	{string}	string	"A different response was recorded first"
//	@Router			/v1/appointments/rsvp [get].
func (h *RSVPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	q := r.URL.Query()
	businessID := q.Get("businessId")
	appointmentID := q.Get("appointmentId")
	token := q.Get("token")
	choice := q.Get("choice")

	if businessID == "" || appointmentID == "" || token == "" || choice == "" {
		writeRSVPPage(w, http.StatusBadRequest, "Invalid link",
			"This RSVP link is missing information. Please use the link from your email.")
		return
	}

	_, message, err := h.RSVPService.ApplyRSVP(ctx, businessID, appointmentID, token, choice)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAppointmentNotFound):
			writeRSVPPage(w, http.StatusNotFound, "Appointment not found",
				"We could not find this appointment. It may have been removed.")
		case errors.Is(err, service.ErrInvalidRSVPToken):
			// Same wording as a malformed link; the page must not reveal
			// whether the appointment exists or what the token should be.
			writeRSVPPage(w, http.StatusBadRequest, "Invalid link",
				"This RSVP link is not valid. Please use the link from your email.")
		case errors.Is(err, service.ErrInvalidChoice):
			writeRSVPPage(w, http.StatusBadRequest, "Invalid link",
				"This RSVP link is not valid. Please use the link from your email.")
		case errors.Is(err, service.ErrRSVPConflict):
			writeRSVPPage(w, http.StatusConflict, "Already answered",
				"A different response was already recorded for this appointment.")
		default:
			log.Error("rsvp failed", "appointment_id", appointmentID, "err", err)
			writeRSVPPage(w, http.StatusInternalServerError, "Something went wrong",
				"We could not record your response. Please try again later.")
		}
		return
	}

	writeRSVPPage(w, http.StatusOK, "Response recorded", message)
}

func writeRSVPPage(w http.ResponseWriter, code int, title, body string) {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>%s</title></head>
<body style="font-family:sans-serif;max-width:32rem;margin:4rem auto;padding:0 1rem;">
<h1 style="font-size:1.4rem;">%s</h1>
<p>%s</p>
</body>
</html>`, html.EscapeString(title), html.EscapeString(title), html.EscapeString(body))

	httpx.WriteHTML(w, code, page)
}
