package api_test

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	rsvpBusinessRe    = regexp.MustCompile(`businessId=([0-9A-Za-z_-]+)`)
	rsvpAppointmentRe = regexp.MustCompile(`appointmentId=([0-9A-Za-z_-]+)`)
	rsvpTokenRe       = regexp.MustCompile(`token=([0-9A-Za-z_-]+)`)
)

// TestAppointmentRSVPFlow walks the whole booking path: bootstrap a profile,
// create a business, book an appointment, then answer the invite through the
// link that went out in the email. Without SMTP configured the invite lands
// in the container log, which is where the test reads the link back from.
func TestAppointmentRSVPFlow(t *testing.T) {
	idp := startIdentityProvider(t)
	baseURL, container := setupAPIContainer(t, idp)

	token := idp.accessToken(t, "e2e-user-1", "alice")

	// Bootstrap the caller's profile
	var user struct {
		UserID            string `json:"userId"`
		DefaultBusinessID string `json:"defaultBusinessId"`
	}
	status := doJSON(t, "POST", baseURL+"/v1/users/bootstrap", token, map[string]string{
		"email":        "alice@example.com",
		"name":         "Alice",
		"businessName": "Alice Hair Studio",
		"location":     "12 Main St",
	}, &user)
	require.Equal(t, 200, status)
	require.Equal(t, "e2e-user-1", user.UserID)

	// Create a business, which becomes the caller's default
	var business struct {
		BusinessID string `json:"businessId"`
	}
	status = doJSON(t, "POST", baseURL+"/v1/businesses", token, map[string]string{
		"name": "Alice Hair Studio",
	}, &business)
	require.Equal(t, 200, status)
	require.NotEmpty(t, business.BusinessID)

	// Book an appointment; the invite email carries the RSVP link
	var appt struct {
		AppointmentID string `json:"appointmentId"`
		Status        string `json:"status"`
	}
	status = doJSON(t, "POST", baseURL+"/v1/appointments", token, map[string]string{
		"title":      "Haircut",
		"email":      "bob@example.com",
		"start_time": "2026-09-15T10:00:00Z",
		"end_time":   "2026-09-15T10:30:00Z",
	}, &appt)
	require.Equal(t, 200, status)
	require.Equal(t, "pending", appt.Status)

	// The API never returns the RSVP token, so recover the link parameters
	// from the logged invite
	logs := containerLogs(t, container)
	bizMatch := rsvpBusinessRe.FindStringSubmatch(logs)
	apptMatch := rsvpAppointmentRe.FindStringSubmatch(logs)
	tokenMatch := rsvpTokenRe.FindStringSubmatch(logs)
	require.NotNil(t, bizMatch, "invite link should be in the container log")
	require.NotNil(t, apptMatch)
	require.NotNil(t, tokenMatch)
	require.Equal(t, business.BusinessID, bizMatch[1])
	require.Equal(t, appt.AppointmentID, apptMatch[1])
	rsvpToken := tokenMatch[1]

	rsvpURL := func(choice, rsvpToken string) string {
		return fmt.Sprintf("%s/v1/appointments/rsvp?businessId=%s&appointmentId=%s&token=%s&choice=%s",
			baseURL, business.BusinessID, appt.AppointmentID, rsvpToken, choice)
	}

	t.Run("accepting confirms the appointment", func(t *testing.T) {
		status, body := getHTML(t, rsvpURL("accepted", rsvpToken))
		require.Equal(t, 200, status)
		require.Contains(t, body, "confirmed")
	})

	t.Run("repeating the same answer succeeds", func(t *testing.T) {
		status, body := getHTML(t, rsvpURL("accepted", rsvpToken))
		require.Equal(t, 200, status)
		require.Contains(t, body, "confirmed")
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		status, _ := getHTML(t, rsvpURL("accepted", "not-the-real-token"))
		require.Equal(t, 400, status)
	})

	t.Run("listing shows the confirmed status", func(t *testing.T) {
		var list struct {
			Items []struct {
				AppointmentID string `json:"appointmentId"`
				Status        string `json:"status"`
			} `json:"items"`
		}
		status := doJSON(t, "GET", baseURL+"/v1/appointments", token, nil, &list)
		require.Equal(t, 200, status)
		require.Len(t, list.Items, 1)
		require.Equal(t, appt.AppointmentID, list.Items[0].AppointmentID)
		require.Equal(t, "confirmed", list.Items[0].Status)
	})
}

// getHTML fetches a URL without auth and returns status code and body.
func getHTML(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}
