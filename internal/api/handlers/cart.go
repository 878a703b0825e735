package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//	@Summary		Get the cart
//	@Description	Returns the cart of the current profile. The first call fetches it from the backend.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartView			"Current cart"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		ProfileToken
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.cartService.Get(r.Context(), sess))
	}
}

// SyncCart godoc
//	@Summary		Re-sync the cart
//	@Description	Replaces the cached cart lines with the backend's current state.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartView			"Synced cart"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable or malformed response"
//	@Security		ProfileToken
//	@Router			/cart/sync [post]
func (h *CartHandler) SyncCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		view, err := h.cartService.Sync(r.Context(), sess)
		if err != nil {
			logger.Error("Failed to sync cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// AddItem godoc
//	@Summary		Add a product to the cart
//	@Description	Adds one unit, or the given quantity, of a product. The backend merges it with an existing line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Product and optional quantity"
//	@Success		200		{object}	models.CartView			"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		502		{object}	response.ErrorResponse	"Backend unavailable"
//	@Security		ProfileToken
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		logger = logger.With(slog.Int64("productId", req.ProductID))

		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}

		view, err := h.cartService.AddItemQuantity(r.Context(), sess, req.ProductID, quantity)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int("quantity", quantity))
		response.Success(w, http.StatusOK, view)
	}
}

// UpdateItem godoc
//	@Summary		Change a line's quantity
//	@Description	Sets the quantity of a cart line. Zero or less removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int								true	"Cart line ID"
//	@Param			quantity	body		models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200			{object}	models.CartView					"Updated cart"
//	@Failure		400			{object}	response.ErrorResponse			"Invalid line ID or body"
//	@Failure		404			{object}	response.ErrorResponse			"Line not in cart"
//	@Failure		502			{object}	response.ErrorResponse			"Backend unavailable"
//	@Security		ProfileToken
//	@Router			/cart/items/{id} [put]
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		lineID, err := utils.PathID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart line id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		logger = logger.With(slog.Int64("lineId", lineID))

		view, err := h.cartService.UpdateQuantity(r.Context(), sess, lineID, *req.Quantity)
		if err != nil {
			logger.Error("Failed to update cart line", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// RemoveItem godoc
//	@Summary		Remove a cart line
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		int						true	"Cart line ID"
//	@Success		200	{object}	models.CartView			"Updated cart"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid line ID"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Security		ProfileToken
//	@Router			/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		lineID, err := utils.PathID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart line id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		view, err := h.cartService.RemoveItem(r.Context(), sess, lineID)
		if err != nil {
			logger.Error("Failed to remove cart line", slog.Int64("lineId", lineID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

// ClearCart godoc
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartView			"Empty cart"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Security		ProfileToken
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		view, err := h.cartService.Clear(r.Context(), sess)
		if err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, view)
	}
}

// TogglePanel godoc
//	@Summary		Toggle the cart panel
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartView	"Cart with the new panel flag"
//	@Security		ProfileToken
//	@Router			/cart/toggle [post]
func (h *CartHandler) TogglePanel() http.HandlerFunc {
	return h.panel(h.cartService.Toggle)
}

// OpenPanel godoc
//	@Summary		Open the cart panel
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartView	"Cart with the panel open"
//	@Security		ProfileToken
//	@Router			/cart/open [post]
func (h *CartHandler) OpenPanel() http.HandlerFunc {
	return h.panel(h.cartService.Open)
}

// ClosePanel godoc
//	@Summary		Close the cart panel
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartView	"Cart with the panel closed"
//	@Security		ProfileToken
//	@Router			/cart/close [post]
func (h *CartHandler) ClosePanel() http.HandlerFunc {
	return h.panel(h.cartService.Close)
}

func (h *CartHandler) panel(apply func(ctx context.Context, sess *session.Session) *models.CartView) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, apply(r.Context(), sess))
	}
}
