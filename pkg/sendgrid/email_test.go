package sendgrid_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	sendgrid_client "github.com/aaravmahajanofficial/storefront/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailService(t *testing.T) {
	// Act
	service := sendgrid_client.NewEmailService("test-api-key", "sender@example.com", "Test Sender")

	// Assert
	assert.NotNil(t, service)
	assert.NotNil(t, service.GetSendGridClient())
}

type sendgridV3Payload struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Bcc     []map[string]string `json:"bcc,omitempty"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func TestEmailService_Send(t *testing.T) {
	apiKey := "SG.test-api-key"
	fromEmail := "pedidos@storefront.local"
	fromName := "Storefront"

	tests := []struct {
		name          string
		msg           *sendgrid_client.Message
		status        int
		expectedError string
		checkPayload  func(t *testing.T, r *http.Request, payload sendgridV3Payload)
	}{
		{
			name: "Success - Text and HTML",
			msg: &sendgrid_client.Message{
				To:          "ana@example.com",
				ToName:      "Ana",
				Subject:     "Pedido #1001 confirmado",
				Content:     "Gracias por tu compra",
				HTMLContent: "<p>Gracias por tu compra</p>",
			},
			status: http.StatusAccepted,
			checkPayload: func(t *testing.T, r *http.Request, p sendgridV3Payload) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer "+apiKey, r.Header.Get("Authorization"))

				require.Len(t, p.Personalizations, 1)
				pers := p.Personalizations[0]
				require.Len(t, pers.To, 1)
				assert.Equal(t, "ana@example.com", pers.To[0]["email"])
				assert.Equal(t, "Ana", pers.To[0]["name"])
				assert.Equal(t, "Pedido #1001 confirmado", pers.Subject)
				assert.Equal(t, fromEmail, p.From["email"])
				assert.Equal(t, fromName, p.From["name"])

				require.Len(t, p.Content, 2)
				assert.Equal(t, "text/plain", p.Content[0].Type)
				assert.Equal(t, "text/html", p.Content[1].Type)
			},
		},
		{
			name: "Success - Text only with BCC",
			msg: &sendgrid_client.Message{
				To:      "ana@example.com",
				BCC:     []string{"ventas@storefront.local"},
				Subject: "Pedido",
				Content: "Texto",
			},
			status: http.StatusAccepted,
			checkPayload: func(t *testing.T, _ *http.Request, p sendgridV3Payload) {
				require.Len(t, p.Personalizations, 1)
				require.Len(t, p.Personalizations[0].Bcc, 1)
				assert.Equal(t, "ventas@storefront.local", p.Personalizations[0].Bcc[0]["email"])
				require.Len(t, p.Content, 1)
			},
		},
		{
			name:          "Failure - SendGrid API Error (4xx)",
			msg:           &sendgrid_client.Message{To: "bad@example.com", Subject: "x", Content: "x"},
			status:        http.StatusBadRequest,
			expectedError: "failed to send email, status code: 400",
		},
		{
			name:          "Failure - SendGrid API Error (5xx)",
			msg:           &sendgrid_client.Message{To: "ana@example.com", Subject: "x", Content: "x"},
			status:        http.StatusInternalServerError,
			expectedError: "failed to send email, status code: 500",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var (
				payload sendgridV3Payload
				request *http.Request
			)

			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				json.Unmarshal(body, &payload)
				request = r

				w.WriteHeader(tc.status)
			}))
			defer mockServer.Close()

			service := sendgrid_client.NewEmailService(apiKey, fromEmail, fromName)
			service.GetSendGridClient().Request.BaseURL = mockServer.URL

			// Act
			err := service.Send(t.Context(), tc.msg)

			// Assert
			if tc.expectedError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			}

			if tc.checkPayload != nil {
				tc.checkPayload(t, request, payload)
			}
		})
	}

	t.Run("Failure - Network Error", func(t *testing.T) {
		// Arrange
		mockServer := httptest.NewServer(http.NotFoundHandler())
		service := sendgrid_client.NewEmailService(apiKey, fromEmail, fromName)
		service.GetSendGridClient().Request.BaseURL = mockServer.URL
		mockServer.Close()

		// Act
		err := service.Send(t.Context(), &sendgrid_client.Message{To: "ana@example.com", Subject: "x", Content: "x"})

		// Assert
		assert.Error(t, err)
	})
}
