package service

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/google/uuid"
)

type CartService interface {
	// Get returns the cart, syncing it from the backend the first time (every time when the
	// settings store is shared). Sync failures are logged and leave the last snapshot, empty at first.
	Get(ctx context.Context, sess *session.Session) *models.CartView
	Sync(ctx context.Context, sess *session.Session) (*models.CartView, error)
	AddItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartView, error)
	AddItemQuantity(ctx context.Context, sess *session.Session, productID int64, quantity int) (*models.CartView, error)
	RemoveItem(ctx context.Context, sess *session.Session, lineID int64) (*models.CartView, error)
	UpdateQuantity(ctx context.Context, sess *session.Session, lineID int64, quantity int) (*models.CartView, error)
	Clear(ctx context.Context, sess *session.Session) (*models.CartView, error)
	// Checkout hands the current lines to place while holding the cart lock, then empties the
	// backend cart they came from. Mutations arriving meanwhile wait and land after the clear.
	// A place error leaves the cart untouched. The profile's next Get syncs again against
	// whatever identity is current by then.
	Checkout(ctx context.Context, sess *session.Session, place func(lines []models.CartLine) error) (*models.CartView, error)
	Toggle(ctx context.Context, sess *session.Session) *models.CartView
	Open(ctx context.Context, sess *session.Session) *models.CartView
	Close(ctx context.Context, sess *session.Session) *models.CartView
}

// cartHolder is one profile's cart. mu serializes every sync and mutation on it.
type cartHolder struct {
	mu     sync.Mutex
	state  models.CartState
	synced bool

	// lastSeen is guarded by cartService.mu.
	lastSeen time.Time
}

// cartService keeps cart snapshots in process memory, one per profile. With a shared settings
// store other replicas may change the backend cart, so every Get refetches.
type cartService struct {
	api      CartAPI
	identity IdentityService
	shared   bool
	idle     time.Duration
	now      func() time.Time

	mu        sync.Mutex
	carts     map[uuid.UUID]*cartHolder
	lastSweep time.Time
}

// NewCartService drops carts idle for longer than cfg.TTL, the lifetime of the profile's
// settings. A TTL <= 0 keeps them for the life of the process.
func NewCartService(api CartAPI, identity IdentityService, cfg config.Storage) CartService {
	return NewCartServiceWithClock(api, identity, cfg, time.Now)
}

// NewCartServiceWithClock is NewCartService with a fixed time source.
func NewCartServiceWithClock(api CartAPI, identity IdentityService, cfg config.Storage, now func() time.Time) CartService {
	return &cartService{
		api:       api,
		identity:  identity,
		shared:    cfg.Driver == config.StorageRedis || cfg.Driver == config.StoragePostgres,
		idle:      cfg.TTL,
		now:       now,
		carts:     make(map[uuid.UUID]*cartHolder),
		lastSweep: now(),
	}
}

func (s *cartService) holder(sess *session.Session) *cartHolder {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictIdle(now)

	h, ok := s.carts[sess.ProfileID]
	if !ok {
		h = &cartHolder{}
		s.carts[sess.ProfileID] = h
	}

	h.lastSeen = now

	return h
}

// evictIdle drops carts untouched for longer than the idle window, sweeping at most twice per
// window. Callers hold s.mu.
func (s *cartService) evictIdle(now time.Time) {
	if s.idle <= 0 || now.Sub(s.lastSweep) < s.idle/2 {
		return
	}

	s.lastSweep = now

	for id, h := range s.carts {
		if now.Sub(h.lastSeen) > s.idle {
			delete(s.carts, id)
		}
	}
}

// stale reports whether the snapshot must be refetched before use. Callers hold h.mu.
func (s *cartService) stale(h *cartHolder) bool {
	return !h.synced || s.shared
}

// fetch replaces the lines with userID's backend cart. Callers hold h.mu.
func (s *cartService) fetch(ctx context.Context, h *cartHolder, userID int64) error {
	lines, err := s.api.GetCart(ctx, userID)
	if err != nil {
		return errors.FromBackend(err, "Failed to fetch cart")
	}

	h.state.Lines = lines
	h.synced = true

	return nil
}

func (s *cartService) Get(ctx context.Context, sess *session.Session) *models.CartView {

	h := s.holder(sess)

	h.mu.Lock()
	defer h.mu.Unlock()

	if s.stale(h) {
		if err := s.fetch(ctx, h, s.identity.Resolve(ctx, sess)); err != nil {
			middleware.LoggerFromContext(ctx).Warn("Cart sync failed, serving the last snapshot",
				slog.String("profileId", sess.ProfileID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return h.state.View()
}

func (s *cartService) Sync(ctx context.Context, sess *session.Session) (*models.CartView, error) {

	h := s.holder(sess)

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := s.fetch(ctx, h, s.identity.Resolve(ctx, sess)); err != nil {
		return nil, err
	}

	return h.state.View(), nil
}

// mutate runs fn under the cart's lock. fn replaces the lines with each backend response it gets.
func (s *cartService) mutate(ctx context.Context, sess *session.Session, operation string, fn func(h *cartHolder, userID int64) error) (*models.CartView, error) {

	logger := middleware.LoggerFromContext(ctx)

	h := s.holder(sess)

	h.mu.Lock()
	defer h.mu.Unlock()

	userID := s.identity.Resolve(ctx, sess)

	err := fn(h, userID)
	metrics.RecordCartMutation(operation, err)

	if err != nil {
		logger.Error("Cart mutation failed",
			slog.String("operation", operation),
			slog.Int64("userId", userID),
			slog.String("error", err.Error()),
		)

		return nil, err
	}

	logger.Info("Cart updated",
		slog.String("operation", operation),
		slog.Int64("userId", userID),
		slog.Int("totalItems", h.state.TotalItems()),
	)

	return h.state.View(), nil
}

func (h *cartHolder) replace(lines []models.CartLine) {
	h.state.Lines = lines
	h.synced = true
}

func (s *cartService) AddItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartView, error) {
	return s.AddItemQuantity(ctx, sess, productID, 1)
}

func (s *cartService) AddItemQuantity(ctx context.Context, sess *session.Session, productID int64, quantity int) (*models.CartView, error) {

	if productID <= 0 {
		return nil, errors.AddValidationError("product_id", "must be positive")
	}

	if quantity <= 0 {
		return nil, errors.AddValidationError("quantity", "must be at least 1")
	}

	return s.mutate(ctx, sess, "add", func(h *cartHolder, userID int64) error {
		lines, err := s.api.AddCartLine(ctx, userID, productID, quantity)
		if err != nil {
			return errors.FromBackend(err, "Failed to add item to cart")
		}

		h.replace(lines)

		return nil
	})
}

func (s *cartService) RemoveItem(ctx context.Context, sess *session.Session, lineID int64) (*models.CartView, error) {
	return s.mutate(ctx, sess, "remove", func(h *cartHolder, userID int64) error {
		return s.remove(ctx, h, userID, lineID)
	})
}

func (s *cartService) remove(ctx context.Context, h *cartHolder, userID, lineID int64) error {
	lines, err := s.api.RemoveCartLine(ctx, userID, lineID)
	if err != nil {
		return errors.FromBackend(err, "Failed to remove item from cart")
	}

	h.replace(lines)

	return nil
}

// UpdateQuantity removes the line and adds its product back with the new quantity. The backend
// has no update call, so a failed add leaves the cart without the line.
func (s *cartService) UpdateQuantity(ctx context.Context, sess *session.Session, lineID int64, quantity int) (*models.CartView, error) {

	if quantity <= 0 {
		return s.RemoveItem(ctx, sess, lineID)
	}

	return s.mutate(ctx, sess, "update", func(h *cartHolder, userID int64) error {

		if s.stale(h) {
			if err := s.fetch(ctx, h, userID); err != nil {
				return err
			}
		}

		line, ok := h.state.Line(lineID)
		if !ok {
			return errors.NotFoundError("Cart line not found")
		}

		if line.Quantity == quantity {
			return nil
		}

		if err := s.remove(ctx, h, userID, lineID); err != nil {
			return err
		}

		lines, err := s.api.AddCartLine(ctx, userID, line.Product.ID, quantity)
		if err != nil {
			middleware.LoggerFromContext(ctx).Warn("Cart line removed but re-adding it failed",
				slog.Int64("lineId", lineID),
				slog.Int64("productId", line.Product.ID),
				slog.Int("quantity", quantity),
			)

			return errors.FromBackend(err, "Failed to update item quantity").
				WithDetail("the line was removed and could not be added back")
		}

		h.replace(lines)

		return nil
	})
}

func (s *cartService) Clear(ctx context.Context, sess *session.Session) (*models.CartView, error) {
	return s.mutate(ctx, sess, "clear", func(h *cartHolder, userID int64) error {
		return s.clear(ctx, h, userID)
	})
}

func (s *cartService) Checkout(ctx context.Context, sess *session.Session, place func(lines []models.CartLine) error) (*models.CartView, error) {

	logger := middleware.LoggerFromContext(ctx)

	h := s.holder(sess)

	h.mu.Lock()
	defer h.mu.Unlock()

	// the lines belong to this user's backend cart, whoever place switches the profile to
	owner := s.identity.Resolve(ctx, sess)

	if s.stale(h) {
		if err := s.fetch(ctx, h, owner); err != nil {
			return nil, err
		}
	}

	if len(h.state.Lines) == 0 {
		return nil, errors.BadRequestError("Cart is empty")
	}

	if err := place(slices.Clone(h.state.Lines)); err != nil {
		return nil, err
	}

	placed := h.state.View()

	err := s.clear(ctx, h, owner)
	metrics.RecordCartMutation("checkout", err)

	h.synced = false

	if err != nil {
		logger.Error("Order placed but the cart could not be cleared", slog.Int64("userId", owner), slog.String("error", err.Error()))
		return placed, nil
	}

	logger.Info("Cart checked out", slog.Int64("userId", owner))

	return h.state.View(), nil
}

// clear empties the backend cart and refetches it. Backends without a clear route get the
// lines removed one by one.
func (s *cartService) clear(ctx context.Context, h *cartHolder, userID int64) error {

	err := s.api.ClearCart(ctx, userID)
	if err != nil && (errors.IsStatus(err, http.StatusNotFound) || errors.IsStatus(err, http.StatusMethodNotAllowed)) {
		middleware.LoggerFromContext(ctx).Info("Backend has no cart clear route, removing lines one by one", slog.Int64("userId", userID))
		err = s.removeAll(ctx, userID)
	}

	if err != nil {
		return errors.FromBackend(err, "Failed to clear cart")
	}

	lines, err := s.api.GetCart(ctx, userID)
	if err != nil {
		return errors.FromBackend(err, "Failed to fetch cart")
	}

	h.replace(lines)

	return nil
}

func (s *cartService) removeAll(ctx context.Context, userID int64) error {
	lines, err := s.api.GetCart(ctx, userID)
	if err != nil {
		return err
	}

	for _, line := range lines {
		if _, err := s.api.RemoveCartLine(ctx, userID, line.ID); err != nil {
			return err
		}
	}

	return nil
}

func (s *cartService) setOpen(sess *session.Session, open func(bool) bool) *models.CartView {

	h := s.holder(sess)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.state.IsOpen = open(h.state.IsOpen)

	return h.state.View()
}

func (s *cartService) Toggle(_ context.Context, sess *session.Session) *models.CartView {
	return s.setOpen(sess, func(open bool) bool { return !open })
}

func (s *cartService) Open(_ context.Context, sess *session.Session) *models.CartView {
	return s.setOpen(sess, func(bool) bool { return true })
}

func (s *cartService) Close(_ context.Context, sess *session.Session) *models.CartView {
	return s.setOpen(sess, func(bool) bool { return false })
}
