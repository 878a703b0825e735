package service_test

import (
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/backend/backendtest"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopperID = int64(5)

func setupCartTest(t *testing.T) (*backendtest.Server, service.CartService, *session.Session) {
	t.Helper()

	srv := backendtest.New(t)
	srv.AddUser(backendtest.User{ID: shopperID, FirstName: "Ana", Email: "ana@example.com"})
	srv.AddProduct(backendtest.Product{ID: 1, Name: "Galaxy S25", Price: decimal.NewFromInt(100), Active: true})
	srv.AddProduct(backendtest.Product{ID: 2, Name: "Smart TV", Price: decimal.RequireFromString("249.50"), Active: true})

	client := srv.Client()
	carts := service.NewCartService(client, service.NewIdentityService(client, identityCfg), config.Storage{Driver: config.StorageMemory})

	sess := newSession()
	require.NoError(t, sess.SetUserID(t.Context(), shopperID))

	return srv, carts, sess
}

func TestCartScenario(t *testing.T) {
	// Arrange
	_, carts, sess := setupCartTest(t)
	ctx := t.Context()

	empty := carts.Get(ctx, sess)
	require.Empty(t, empty.Lines)

	// Act & Assert: add
	view, err := carts.AddItem(ctx, sess, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalItems)
	assert.True(t, decimal.NewFromInt(100).Equal(view.TotalPrice))

	// update to 3
	view, err = carts.UpdateQuantity(ctx, sess, view.Lines[0].ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalItems)
	assert.True(t, decimal.NewFromInt(300).Equal(view.TotalPrice))

	// remove
	view, err = carts.RemoveItem(ctx, sess, view.Lines[0].ID)
	require.NoError(t, err)
	assert.Zero(t, view.TotalItems)
	assert.True(t, view.TotalPrice.IsZero())
}

func TestCartTotalsFollowSnapshot(t *testing.T) {
	// Arrange
	srv, carts, sess := setupCartTest(t)
	ctx := t.Context()

	// Act
	_, err := carts.AddItemQuantity(ctx, sess, 1, 2)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, sess, 2)
	require.NoError(t, err)
	view, err := carts.AddItem(ctx, sess, 1)
	require.NoError(t, err)

	// Assert
	require.Len(t, view.Lines, 2, "the backend merges repeated adds")

	backendItems := 0
	for _, l := range srv.CartLines(shopperID) {
		backendItems += l.Quantity
	}

	assert.Equal(t, backendItems, view.TotalItems)
	assert.Equal(t, 4, view.TotalItems)
	assert.True(t, decimal.RequireFromString("549.50").Equal(view.TotalPrice))
}

func TestCartInitialSync(t *testing.T) {
	t.Run("Success - Loads the backend cart", func(t *testing.T) {
		// Arrange
		srv, carts, sess := setupCartTest(t)
		srv.SetCart(shopperID, backendtest.CartLine{ProductID: 2, Quantity: 2})

		// Act
		view := carts.Get(t.Context(), sess)

		// Assert
		require.Len(t, view.Lines, 1)
		assert.Equal(t, "Smart TV", view.Lines[0].Product.Name)
		assert.Equal(t, 2, view.TotalItems)
	})

	t.Run("Failure - Swallowed and retried on next read", func(t *testing.T) {
		// Arrange
		srv, carts, sess := setupCartTest(t)
		srv.SetCart(shopperID, backendtest.CartLine{ProductID: 1, Quantity: 1})
		srv.FailNext(http.MethodGet, "/cart/user/", http.StatusServiceUnavailable)

		// Act
		first := carts.Get(t.Context(), sess)
		second := carts.Get(t.Context(), sess)

		// Assert
		assert.Empty(t, first.Lines)
		assert.Len(t, second.Lines, 1)
	})

	t.Run("Success - Synced once", func(t *testing.T) {
		// Arrange
		srv, carts, sess := setupCartTest(t)
		carts.Get(t.Context(), sess)
		srv.ResetCalls()

		// Act
		carts.Get(t.Context(), sess)

		// Assert
		assert.Empty(t, srv.Calls())
	})
}

func TestCartSync(t *testing.T) {
	// Arrange
	srv, carts, sess := setupCartTest(t)
	carts.Get(t.Context(), sess)
	srv.SetCart(shopperID, backendtest.CartLine{ProductID: 1, Quantity: 4})

	// Act
	view, err := carts.Sync(t.Context(), sess)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 4, view.TotalItems)

	srv.FailNext(http.MethodGet, "/cart/user/", http.StatusInternalServerError)
	_, err = carts.Sync(t.Context(), sess)
	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeUpstream, appErr.Code)
}

func TestCartUpdateQuantity(t *testing.T) {
	t.Run("Idempotent - Same quantity is a no-op", func(t *testing.T) {
		// Arrange
		srv, carts, sess := setupCartTest(t)
		srv.SetCart(shopperID, backendtest.CartLine{ProductID: 1, Quantity: 2})
		before := carts.Get(t.Context(), sess)
		srv.ResetCalls()

		// Act
		after, err := carts.UpdateQuantity(t.Context(), sess, before.Lines[0].ID, 2)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, before, after)
		assert.Empty(t, srv.Calls())
	})

	for _, qty := range []int{0, -3} {
		t.Run("Success - Non-positive quantity removes the line", func(t *testing.T) {
			// Arrange
			srv, carts, sess := setupCartTest(t)
			srv.SetCart(shopperID,
				backendtest.CartLine{ProductID: 1, Quantity: 2},
				backendtest.CartLine{ProductID: 2, Quantity: 1},
			)
			lineID := carts.Get(t.Context(), sess).Lines[0].ID

			// Act
			view, err := carts.UpdateQuantity(t.Context(), sess, lineID, qty)

			// Assert
			require.NoError(t, err)
			require.Len(t, view.Lines, 1)
			assert.Equal(t, int64(2), view.Lines[0].Product.ID)
			assert.Equal(t, 1, srv.CountCalls(http.MethodDelete, "/cart/user/5/items/"))
			assert.Zero(t, srv.CountCalls(http.MethodPost, "/cart/user/"))
		})
	}

	t.Run("Success - Remove then add", func(t *testing.T) {
		// Arrange
		srv, carts, sess := setupCartTest(t)
		srv.SetCart(shopperID, backendtest.CartLine{ProductID: 1, Quantity: 1})
		old := carts.Get(t.Context(), sess).Lines[0]
		srv.ResetCalls()

		// Act
		view, err := carts.UpdateQuantity(t.Context(), sess, old.ID, 5)

		// Assert
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, 5, view.Lines[0].Quantity)
		assert.NotEqual(t, old.ID, view.Lines[0].ID, "the backend assigns a fresh line id")
		assert.Equal(t, []string{
			"DELETE /cart/user/5/items/" + strconv.FormatInt(old.ID, 10),
			"POST /cart/user/5/items",
		}, srv.Calls())
	})

	t.Run("Failure - Add fails after remove", func(t *testing.T) {
		// Arrange
		srv, carts, sess := setupCartTest(t)
		srv.SetCart(shopperID,
			backendtest.CartLine{ProductID: 1, Quantity: 1},
			backendtest.CartLine{ProductID: 2, Quantity: 1},
		)
		lineID := carts.Get(t.Context(), sess).Lines[0].ID
		srv.FailNext(http.MethodPost, "/cart/user/", http.StatusInternalServerError)

		// Act
		view, err := carts.UpdateQuantity(t.Context(), sess, lineID, 4)

		// Assert
		require.Error(t, err)
		assert.Nil(t, view)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUpstream, appErr.Code)

		current := carts.Get(t.Context(), sess)
		require.Len(t, current.Lines, 1, "state is the last backend snapshot, without the removed line")
		assert.Equal(t, int64(2), current.Lines[0].Product.ID)
		assert.Len(t, srv.CartLines(shopperID), 1)
	})

	t.Run("Failure - Unknown line", func(t *testing.T) {
		// Arrange
		_, carts, sess := setupCartTest(t)
		carts.Get(t.Context(), sess)

		// Act
		_, err := carts.UpdateQuantity(t.Context(), sess, 999, 2)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestCartMutationFailureKeepsSnapshot(t *testing.T) {
	// Arrange
	srv, carts, sess := setupCartTest(t)
	srv.SetCart(shopperID, backendtest.CartLine{ProductID: 1, Quantity: 1})
	before := carts.Get(t.Context(), sess)
	srv.FailNext(http.MethodPost, "/cart/user/", http.StatusBadRequest)

	// Act
	_, err := carts.AddItem(t.Context(), sess, 2)

	// Assert
	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	assert.Equal(t, before, carts.Get(t.Context(), sess))
}

func TestCartAddValidation(t *testing.T) {
	srv, carts, sess := setupCartTest(t)

	_, err := carts.AddItemQuantity(t.Context(), sess, 1, 0)
	require.Error(t, err)

	_, err = carts.AddItem(t.Context(), sess, 0)
	require.Error(t, err)

	assert.Empty(t, srv.Calls())
}

func TestCartClear(t *testing.T) {
	t.Run("Success - Clear route", func(t *testing.T) {
		// Arrange
		srv, carts, sess := setupCartTest(t)
		srv.SetCart(shopperID,
			backendtest.CartLine{ProductID: 1, Quantity: 1},
			backendtest.CartLine{ProductID: 2, Quantity: 3},
		)
		carts.Get(t.Context(), sess)

		// Act
		view, err := carts.Clear(t.Context(), sess)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.Empty(t, srv.CartLines(shopperID))
		assert.Equal(t, 1, srv.CountCalls(http.MethodDelete, "/cart/user/5"))
	})

	t.Run("Success - Falls back to removing lines", func(t *testing.T) {
		// Arrange
		srv, carts, sess := setupCartTest(t)
		srv.NoClearEndpoint = true
		srv.SetCart(shopperID,
			backendtest.CartLine{ProductID: 1, Quantity: 1},
			backendtest.CartLine{ProductID: 2, Quantity: 3},
		)

		// Act
		view, err := carts.Clear(t.Context(), sess)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.Zero(t, view.TotalItems)
		assert.Empty(t, srv.CartLines(shopperID))
		assert.Equal(t, 2, srv.CountCalls(http.MethodDelete, "/cart/user/5/items/"))
	})

	t.Run("Failure - Backend error", func(t *testing.T) {
		// Arrange
		srv, carts, sess := setupCartTest(t)
		srv.SetCart(shopperID, backendtest.CartLine{ProductID: 1, Quantity: 1})
		carts.Get(t.Context(), sess)
		srv.FailNext(http.MethodDelete, "/cart/user/", http.StatusInternalServerError)

		// Act
		_, err := carts.Clear(t.Context(), sess)

		// Assert
		require.Error(t, err)
		assert.Len(t, carts.Get(t.Context(), sess).Lines, 1)
	})
}

func TestCartCheckout(t *testing.T) {
	t.Run("Success - Lines handed over and the owner's cart emptied", func(t *testing.T) {
		// Arrange
		srv, carts, sess := setupCartTest(t)
		srv.SetCart(shopperID, backendtest.CartLine{ProductID: 1, Quantity: 2})
		srv.SetCart(9, backendtest.CartLine{ProductID: 2, Quantity: 1})

		var got []models.CartLine

		// Act
		view, err := carts.Checkout(t.Context(), sess, func(lines []models.CartLine) error {
			got = lines
			return sess.SetUserID(t.Context(), 9)
		})

		// Assert
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].Product.ID)
		assert.Empty(t, view.Lines)
		assert.Empty(t, srv.CartLines(shopperID))
		assert.Len(t, srv.CartLines(9), 1)
		assert.Len(t, carts.Get(t.Context(), sess).Lines, 1, "next read syncs the current identity")
	})

	t.Run("Failure - Place error leaves the cart", func(t *testing.T) {
		// Arrange
		srv, carts, sess := setupCartTest(t)
		srv.SetCart(shopperID, backendtest.CartLine{ProductID: 1, Quantity: 1})

		// Act
		_, err := carts.Checkout(t.Context(), sess, func([]models.CartLine) error {
			return appErrors.UpstreamError("Failed to create order")
		})

		// Assert
		require.Error(t, err)
		assert.Len(t, srv.CartLines(shopperID), 1)
		assert.Zero(t, srv.CountCalls(http.MethodDelete, "/cart/user/"))
	})

	t.Run("Failure - Empty cart never reaches place", func(t *testing.T) {
		_, carts, sess := setupCartTest(t)

		_, err := carts.Checkout(t.Context(), sess, func([]models.CartLine) error {
			t.Fatal("place must not run on an empty cart")
			return nil
		})

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})
}

func TestCartIdleEviction(t *testing.T) {
	// Arrange
	srv, _, sess := setupCartTest(t)
	srv.SetCart(shopperID, backendtest.CartLine{ProductID: 1, Quantity: 1})

	client := srv.Client()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	carts := service.NewCartServiceWithClock(client, service.NewIdentityService(client, identityCfg),
		config.Storage{Driver: config.StorageMemory, TTL: time.Hour}, func() time.Time { return now })

	carts.Get(t.Context(), sess)
	carts.Open(t.Context(), sess)
	srv.ResetCalls()

	// Act: still inside the idle window
	now = now.Add(30 * time.Minute)
	view := carts.Get(t.Context(), sess)

	// Assert
	assert.True(t, view.IsOpen)
	assert.Empty(t, srv.Calls(), "a live cart is served from memory")

	// Act: idle for longer than the window
	now = now.Add(2 * time.Hour)
	view = carts.Get(t.Context(), sess)

	// Assert
	assert.False(t, view.IsOpen, "the evicted cart starts over")
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, 1, srv.CountCalls(http.MethodGet, "/cart/user/"))
}

func TestCartSharedStoreRefetches(t *testing.T) {
	// Arrange
	srv, _, sess := setupCartTest(t)
	client := srv.Client()
	carts := service.NewCartService(client, service.NewIdentityService(client, identityCfg),
		config.Storage{Driver: config.StorageRedis, TTL: time.Hour})

	require.Empty(t, carts.Get(t.Context(), sess).Lines)

	// Act: another replica adds a line
	srv.SetCart(shopperID, backendtest.CartLine{ProductID: 2, Quantity: 1})
	view := carts.Get(t.Context(), sess)

	// Assert
	assert.Len(t, view.Lines, 1)

	// Act: a failed refetch keeps the last snapshot
	srv.FailNext(http.MethodGet, "/cart/user/", http.StatusBadGateway)
	view = carts.Get(t.Context(), sess)

	// Assert
	assert.Len(t, view.Lines, 1)
}

func TestCartPanel(t *testing.T) {
	// Arrange
	srv, carts, sess := setupCartTest(t)
	ctx := t.Context()

	// Act & Assert
	assert.True(t, carts.Toggle(ctx, sess).IsOpen)
	assert.False(t, carts.Toggle(ctx, sess).IsOpen)
	assert.True(t, carts.Open(ctx, sess).IsOpen)
	assert.True(t, carts.Open(ctx, sess).IsOpen)
	assert.False(t, carts.Close(ctx, sess).IsOpen)
	assert.Empty(t, srv.Calls())
}

func TestCartConcurrentMutationsAreSerialized(t *testing.T) {
	// Arrange
	srv, carts, sess := setupCartTest(t)
	srv.SetCart(shopperID, backendtest.CartLine{ProductID: 1, Quantity: 1})
	lineID := carts.Get(t.Context(), sess).Lines[0].ID

	var wg sync.WaitGroup

	// Act
	for _, qty := range []int{2, 3, 4, 5, 6} {
		wg.Add(1)

		go func() {
			defer wg.Done()
			// all but the first see a stale line id and fail cleanly
			carts.UpdateQuantity(t.Context(), sess, lineID, qty)
		}()
	}

	wg.Wait()

	// Assert
	lines := srv.CartLines(shopperID)
	require.Len(t, lines, 1, "no duplicated or lost lines")

	view := carts.Get(t.Context(), sess)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, lines[0].Quantity, view.Lines[0].Quantity)
}
