package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

// requireSession fetches the profile session attached by the session middleware.
func requireSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		middleware.LoggerFromContext(r.Context()).Error("Request reached a handler without a profile session")
		response.Error(w, errors.InternalError("Session unavailable"))
		return nil, false
	}

	return sess, true
}
