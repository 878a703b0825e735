package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/backend"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/session"
)

type IdentityService interface {
	// Resolve never fails. When every remote step fails it degrades to the configured fallback id,
	// which is never stored for the profile.
	Resolve(ctx context.Context, sess *session.Session) int64
}

type identityService struct {
	users UserAPI
	cfg   config.Identity
}

func NewIdentityService(users UserAPI, cfg config.Identity) IdentityService {
	return &identityService{users: users, cfg: cfg}
}

// Resolve picks the shopper's backend user id, first match wins:
// the signed-in user, a stored id, the guest account by email, a freshly registered guest.
func (s *identityService) Resolve(ctx context.Context, sess *session.Session) int64 {

	logger := middleware.LoggerFromContext(ctx)

	user, err := sess.CurrentUser(ctx)
	if err != nil {
		logger.Warn("Failed to read current user", slog.String("error", err.Error()))
	}

	if user != nil && user.ID > 0 {
		s.persist(ctx, sess, user.ID)
		return user.ID
	}

	id, err := sess.UserID(ctx)
	if err != nil {
		logger.Warn("Failed to read stored user id", slog.String("error", err.Error()))
	}

	if id > 0 {
		return id
	}

	guest, err := s.users.GetUserByEmail(ctx, s.cfg.GuestEmail)
	if err == nil && guest.ID > 0 {
		s.persist(ctx, sess, guest.ID)
		return guest.ID
	}

	if err != nil {
		logger.Info("Guest account lookup failed, registering one", slog.String("error", err.Error()))
	}

	guest, err = s.users.Register(ctx, &backend.NewUser{
		FirstName: s.cfg.GuestName,
		Email:     s.cfg.GuestEmail,
		Password:  s.cfg.GuestPassword,
	})
	if err == nil && guest.ID > 0 {
		s.persist(ctx, sess, guest.ID)
		return guest.ID
	}

	if err != nil {
		logger.Warn("Identity resolution degraded to fallback user id",
			slog.Int64("fallbackUserId", s.cfg.FallbackUserID),
			slog.String("error", err.Error()),
		)
	}

	// not persisted, so the next call retries the guest account
	return s.cfg.FallbackUserID
}

func (s *identityService) persist(ctx context.Context, sess *session.Session, id int64) {
	if err := sess.SetUserID(ctx, id); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to persist user id", slog.Int64("userId", id), slog.String("error", err.Error()))
	}
}
