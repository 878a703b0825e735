package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/health"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct{ err error }

func (p probe) ListActiveCategories(context.Context) ([]models.Category, error) {
	return nil, p.err
}

func TestHealthHandler(t *testing.T) {
	cfg := &config.Config{OTel: config.OTel{ServiceName: "storefront"}}

	tests := []struct {
		name       string
		probeErr   error
		wantStatus int
		wantState  string
	}{
		{name: "Backend up", wantStatus: http.StatusOK, wantState: "OK"},
		{name: "Backend down", probeErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable, wantState: "Unavailable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			h, err := health.NewHealthHandler(cfg, &health.Endpoints{Backend: probe{err: tc.probeErr}})
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			// Act
			h.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			// Assert
			assert.Equal(t, tc.wantStatus, rr.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.wantState, body["status"])
		})
	}
}
