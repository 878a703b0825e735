package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareAndHandler(t *testing.T) {
	// Arrange
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := metrics.Middleware(mux)(mux)

	metrics.RecordCartMutation("add_item", nil)
	metrics.RecordCartMutation("add_item", errors.New("boom"))
	metrics.RecordBackendRequest(http.MethodGet, http.StatusOK)

	// Act
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products/42", nil))

	scrape := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// Assert
	assert.Equal(t, http.StatusTeapot, rr.Code)

	body := scrape.Body.String()
	assert.Contains(t, body, `path="GET /api/v1/products/{id}"`)
	assert.NotContains(t, body, `path="/api/v1/products/42"`)
	assert.Contains(t, body, `storefront_cart_mutations_total{operation="add_item",result="error"}`)
	assert.Contains(t, body, `storefront_backend_requests_total{code="200",method="GET"}`)
}
