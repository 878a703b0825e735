package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

type SessionHandler struct {
	identity service.IdentityService
}

func NewSessionHandler(identity service.IdentityService) *SessionHandler {
	return &SessionHandler{identity: identity}
}

// GetSession godoc
//	@Summary		Get the current profile
//	@Description	Returns the browser profile, the backend user id its cart belongs to, and the signed-in user if any.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	models.SessionInfo		"Current profile"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		ProfileToken
//	@Router			/session [get]
func (h *SessionHandler) GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		info := models.SessionInfo{
			ProfileID: sess.ProfileID,
			UserID:    h.identity.Resolve(r.Context(), sess),
		}

		user, err := sess.CurrentUser(r.Context())
		if err != nil {
			logger.Warn("Failed to read current user", slog.String("error", err.Error()))
		}
		info.User = user

		response.Success(w, http.StatusOK, info)
	}
}
