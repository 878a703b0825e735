package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndValidate(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
		wantCode   string
	}{
		{name: "Valid", body: `{"product_id": 3, "quantity": 2}`, wantOK: true},
		{name: "Empty body", body: ``, wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "Malformed JSON", body: `{"product_id":`, wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "Missing product", body: `{"quantity": 2}`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			var dest models.AddItemRequest

			// Act
			ok := utils.ParseAndValidate(req, rr, &dest, validate)

			// Assert
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, int64(3), dest.ProductID)
				return
			}

			assert.Equal(t, tc.wantStatus, rr.Code)
			var resp response.APIResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}

func TestPathID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/12", nil)
	req.SetPathValue("id", "12")

	id, err := utils.PathID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	req.SetPathValue("id", "-1")
	_, err = utils.PathID(req, "id")
	assert.Error(t, err)

	req.SetPathValue("id", "abc")
	_, err = utils.PathID(req, "id")
	assert.Error(t, err)
}
