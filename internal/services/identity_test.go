package service_test

import (
	"net/http"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/backend/backendtest"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identityCfg = config.Identity{
	GuestEmail:     "invitado@storefront.local",
	GuestPassword:  "invitado123",
	GuestName:      "Invitado",
	FallbackUserID: 1,
}

func newSession() *session.Session {
	return session.New(uuid.New(), storage.NewMemoryStore())
}

func TestIdentityResolve(t *testing.T) {
	t.Run("Success - Signed in user wins", func(t *testing.T) {
		// Arrange
		srv := backendtest.New(t)
		identity := service.NewIdentityService(srv.Client(), identityCfg)
		sess := newSession()
		require.NoError(t, sess.SetUserID(t.Context(), 3))
		require.NoError(t, sess.SetCurrentUser(t.Context(), &models.User{ID: 42, Email: "ana@example.com"}))

		// Act
		id := identity.Resolve(t.Context(), sess)

		// Assert
		assert.Equal(t, int64(42), id)
		stored, _ := sess.UserID(t.Context())
		assert.Equal(t, int64(42), stored)
		assert.Empty(t, srv.Calls())
	})

	t.Run("Success - Stored id", func(t *testing.T) {
		// Arrange
		srv := backendtest.New(t)
		identity := service.NewIdentityService(srv.Client(), identityCfg)
		sess := newSession()
		require.NoError(t, sess.SetUserID(t.Context(), 7))

		// Act
		id := identity.Resolve(t.Context(), sess)

		// Assert
		assert.Equal(t, int64(7), id)
		assert.Empty(t, srv.Calls())
	})

	t.Run("Success - Existing guest account", func(t *testing.T) {
		// Arrange
		srv := backendtest.New(t)
		srv.AddUser(backendtest.User{ID: 55, FirstName: "Invitado", Email: identityCfg.GuestEmail})
		identity := service.NewIdentityService(srv.Client(), identityCfg)
		sess := newSession()

		// Act
		id := identity.Resolve(t.Context(), sess)

		// Assert
		assert.Equal(t, int64(55), id)
		assert.Equal(t, 0, srv.CountCalls(http.MethodPost, "/users/register"))
		stored, _ := sess.UserID(t.Context())
		assert.Equal(t, int64(55), stored)
	})

	t.Run("Success - Registers a guest account", func(t *testing.T) {
		// Arrange
		srv := backendtest.New(t)
		identity := service.NewIdentityService(srv.Client(), identityCfg)
		sess := newSession()

		// Act
		id := identity.Resolve(t.Context(), sess)

		// Assert
		guest, ok := srv.UserByEmail(identityCfg.GuestEmail)
		require.True(t, ok)
		assert.Equal(t, guest.ID, id)
		assert.Equal(t, identityCfg.GuestPassword, guest.Password)
		assert.Equal(t, 1, srv.CountCalls(http.MethodPost, "/users/register"))
	})

	t.Run("Idempotent - Second resolution makes no remote calls", func(t *testing.T) {
		// Arrange
		srv := backendtest.New(t)
		identity := service.NewIdentityService(srv.Client(), identityCfg)
		sess := newSession()
		first := identity.Resolve(t.Context(), sess)
		srv.ResetCalls()

		// Act
		second := identity.Resolve(t.Context(), sess)

		// Assert
		assert.Equal(t, first, second)
		assert.Empty(t, srv.Calls())
		assert.Equal(t, 1, srv.Users())
	})

	t.Run("Degraded - Backend down falls back", func(t *testing.T) {
		// Arrange
		srv := backendtest.New(t)
		for range 2 {
			srv.FailNext(http.MethodGet, "/users/email/", http.StatusInternalServerError)
			srv.FailNext(http.MethodPost, "/users/register", http.StatusServiceUnavailable)
		}
		identity := service.NewIdentityService(srv.Client(), identityCfg)
		sess := newSession()

		// Act
		first := identity.Resolve(t.Context(), sess)
		second := identity.Resolve(t.Context(), sess)

		// Assert
		assert.Equal(t, identityCfg.FallbackUserID, first)
		assert.Equal(t, identityCfg.FallbackUserID, second)
		stored, _ := sess.UserID(t.Context())
		assert.Zero(t, stored, "the fallback id is not stored")
	})

	t.Run("Recovered - Guest account used once the backend is back", func(t *testing.T) {
		// Arrange
		srv := backendtest.New(t)
		srv.FailNext(http.MethodGet, "/users/email/", http.StatusInternalServerError)
		srv.FailNext(http.MethodPost, "/users/register", http.StatusServiceUnavailable)
		identity := service.NewIdentityService(srv.Client(), identityCfg)
		sess := newSession()

		require.Equal(t, identityCfg.FallbackUserID, identity.Resolve(t.Context(), sess))
		srv.AddUser(backendtest.User{ID: 55, FirstName: "Invitado", Email: identityCfg.GuestEmail})

		// Act
		id := identity.Resolve(t.Context(), sess)

		// Assert
		assert.Equal(t, int64(55), id)
		stored, _ := sess.UserID(t.Context())
		assert.Equal(t, int64(55), stored)
	})
}
