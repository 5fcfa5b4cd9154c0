package api_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies the liveness and readiness probes of a running
// container.
func TestHealthEndpoints(t *testing.T) {
	idp := startIdentityProvider(t)
	baseURL, _ := setupAPIContainer(t, idp)

	t.Run("livez reports ok", func(t *testing.T) {
		var health struct {
			Status  string `json:"status"`
			Version string `json:"version"`
		}
		status := doJSON(t, "GET", baseURL+"/livez", "", nil, &health)
		require.Equal(t, 200, status)
		require.Equal(t, "ok", health.Status)
		require.NotEmpty(t, health.Version)
	})

	t.Run("readyz reports ok with database and jwks up", func(t *testing.T) {
		var health struct {
			Status string `json:"status"`
			Checks struct {
				Database string `json:"database"`
				JWKS     string `json:"jwks"`
			} `json:"checks"`
		}
		status := doJSON(t, "GET", baseURL+"/readyz", "", nil, &health)
		require.Equal(t, 200, status)
		require.Equal(t, "ok", health.Status)
		require.Equal(t, "ok", health.Checks.Database)
		// Eager fetch ran at startup, so the cache is populated
		require.Equal(t, "ok", health.Checks.JWKS)
	})
}
