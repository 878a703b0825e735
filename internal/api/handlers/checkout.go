package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// GetState godoc
//	@Summary		Get the checkout step state
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutState	"Current step and entered data"
//	@Failure		500	{object}	response.ErrorResponse	"Session storage error"
//	@Security		ProfileToken
//	@Router			/checkout [get]
func (h *CheckoutHandler) GetState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		state, err := h.checkoutService.State(r.Context(), sess)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to read checkout state", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

// SubmitContact godoc
//	@Summary		Submit the contact step
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			contact	body		models.ContactInfo		true	"Contact details"
//	@Success		200		{object}	models.CheckoutState	"State advanced to shipping"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Security		ProfileToken
//	@Router			/checkout/contact [post]
func (h *CheckoutHandler) SubmitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.ContactInfo
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout contact input")
			return
		}

		state, err := h.checkoutService.SubmitContact(r.Context(), sess, req)
		if err != nil {
			logger.Warn("Checkout contact rejected", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

// SubmitShipping godoc
//	@Summary		Submit the shipping step
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			shipping	body		models.ShippingInfo		true	"Shipping address"
//	@Success		200			{object}	models.CheckoutState	"State advanced to payment"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error or contact step missing"
//	@Security		ProfileToken
//	@Router			/checkout/shipping [post]
func (h *CheckoutHandler) SubmitShipping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.ShippingInfo
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout shipping input")
			return
		}

		state, err := h.checkoutService.SubmitShipping(r.Context(), sess, req)
		if err != nil {
			logger.Warn("Checkout shipping rejected", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

// Back godoc
//	@Summary		Go back one checkout step
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutState	"State moved back one step"
//	@Security		ProfileToken
//	@Router			/checkout/back [post]
func (h *CheckoutHandler) Back() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		state, err := h.checkoutService.Back(r.Context(), sess)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to move checkout back", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

// PlaceOrder godoc
//	@Summary		Place the order
//	@Description	Validates the whole form, finds or creates the customer account, creates one order from the cart and empties the cart.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutForm		true	"Contact, shipping and payment details"
//	@Success		201			{object}	models.CheckoutResult	"Created order and the emptied cart"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error or empty cart"
//	@Failure		502			{object}	response.ErrorResponse	"Backend unavailable"
//	@Security		ProfileToken
//	@Router			/checkout [post]
func (h *CheckoutHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.CheckoutForm
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		result, err := h.checkoutService.Place(r.Context(), sess, &req)
		if err != nil {
			logger.Error("Failed to place order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed", slog.Int64("orderId", result.Order.ID))
		response.Success(w, http.StatusCreated, result)
	}
}
