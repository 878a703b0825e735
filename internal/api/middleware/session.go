package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const HeaderProfileToken = "X-Profile-Token"

// ProfileSession attaches a session to every request. The profile travels in a signed token
// (Authorization: Bearer, or the profile cookie); requests without a valid one get a new profile.
type ProfileSession struct {
	jwtKey []byte
	cfg    config.Security
	store  storage.Store
	now    func() time.Time
}

func NewProfileSession(cfg config.Security, store storage.Store) *ProfileSession {
	return &ProfileSession{jwtKey: []byte(cfg.JWTKey), cfg: cfg, store: store, now: time.Now}
}

func (m *ProfileSession) expiry() time.Duration {
	return time.Duration(m.cfg.JWTExpiryHours) * time.Hour
}

// Mint signs a token for profileID.
func (m *ProfileSession) Mint(profileID uuid.UUID) (string, error) {
	now := m.now()

	claims := &models.ProfileClaims{
		ProfileID: profileID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry())),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.jwtKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign profile token: %w", err)
	}

	return token, nil
}

func (m *ProfileSession) Parse(tokenString string) (*models.ProfileClaims, error) {
	claims := &models.ProfileClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return m.jwtKey, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.ProfileID == uuid.Nil {
		return nil, errors.New("invalid profile token")
	}

	return claims, nil
}

func (m *ProfileSession) token(r *http.Request) string {
	if tokenParts := strings.Split(r.Header.Get("Authorization"), " "); len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
		return tokenParts[1]
	}

	if cookie, err := r.Cookie(m.cfg.CookieName); err == nil {
		return cookie.Value
	}

	return ""
}

func (m *ProfileSession) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		var profileID uuid.UUID

		if tokenString := m.token(r); tokenString != "" {
			claims, err := m.Parse(tokenString)
			if err != nil {
				logger.Warn("Discarding invalid profile token", slog.String("error", err.Error()))
			} else {
				profileID = claims.ProfileID
			}
		}

		if profileID == uuid.Nil {
			profileID = uuid.New()

			tokenString, err := m.Mint(profileID)
			if err != nil {
				logger.Error("Failed to mint profile token", slog.String("error", err.Error()))
				http.Error(w, "internal server error", http.StatusInternalServerError)

				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     m.cfg.CookieName,
				Value:    tokenString,
				Path:     "/",
				MaxAge:   int(m.expiry().Seconds()),
				HttpOnly: true,
				Secure:   m.cfg.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(HeaderProfileToken, tokenString)

			logger.Info("New profile issued", slog.String("profileId", profileID.String()))
		}

		requestScopedLogger := logger.With(slog.String("profileId", profileID.String()))

		ctx := session.WithSession(r.Context(), session.New(profileID, m.store))
		ctx = WithLogger(ctx, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
