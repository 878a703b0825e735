// Package session owns the durable per-profile identifiers. Nothing else reads or writes the
// profile keys directly.
package session

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/google/uuid"
)

const (
	KeyUserID      = "userId"
	KeyCurrentUser = "currentUser"
	KeyFavorites   = "favorites"
	KeyCheckout    = "checkout"
)

type Session struct {
	ProfileID uuid.UUID
	store     storage.Store
}

func New(profileID uuid.UUID, store storage.Store) *Session {
	return &Session{ProfileID: profileID, store: store}
}

func (s *Session) key(name string) string {
	return storage.ProfileKey(s.ProfileID.String(), name)
}

func (s *Session) get(ctx context.Context, name string, dest any) (bool, error) {
	found, err := s.store.Get(ctx, s.key(name), dest)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return found, nil
}

func (s *Session) set(ctx context.Context, name string, value any) error {
	if err := s.store.Set(ctx, s.key(name), value); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}

func (s *Session) remove(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, s.key(name)); err != nil {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}

	return nil
}

// UserID returns 0 when no id has been stored.
func (s *Session) UserID(ctx context.Context) (int64, error) {
	var id int64

	if _, err := s.get(ctx, KeyUserID, &id); err != nil {
		return 0, err
	}

	return id, nil
}

func (s *Session) SetUserID(ctx context.Context, id int64) error {
	return s.set(ctx, KeyUserID, id)
}

// CurrentUser returns nil when nobody is signed in on this profile.
func (s *Session) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User

	found, err := s.get(ctx, KeyCurrentUser, &user)
	if err != nil || !found {
		return nil, err
	}

	return &user, nil
}

func (s *Session) SetCurrentUser(ctx context.Context, user *models.User) error {
	return s.set(ctx, KeyCurrentUser, user)
}

func (s *Session) ClearCurrentUser(ctx context.Context) error {
	return s.remove(ctx, KeyCurrentUser)
}

func (s *Session) Favorites(ctx context.Context) ([]models.Product, error) {
	var favorites []models.Product

	if _, err := s.get(ctx, KeyFavorites, &favorites); err != nil {
		return nil, err
	}

	return favorites, nil
}

func (s *Session) SetFavorites(ctx context.Context, favorites []models.Product) error {
	if favorites == nil {
		favorites = []models.Product{}
	}

	return s.set(ctx, KeyFavorites, favorites)
}

// Checkout returns a fresh state at the contact step when nothing is stored.
func (s *Session) Checkout(ctx context.Context) (*models.CheckoutState, error) {
	state := models.CheckoutState{Step: models.CheckoutStepContact}

	if _, err := s.get(ctx, KeyCheckout, &state); err != nil {
		return nil, err
	}

	if state.Step < models.CheckoutStepContact || state.Step > models.CheckoutStepPayment {
		state.Step = models.CheckoutStepContact
	}

	return &state, nil
}

func (s *Session) SetCheckout(ctx context.Context, state *models.CheckoutState) error {
	return s.set(ctx, KeyCheckout, state)
}

func (s *Session) ClearCheckout(ctx context.Context) error {
	return s.remove(ctx, KeyCheckout)
}

type contextKey string

const sessionKey = contextKey("session")

func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*Session)

	return sess, ok
}
