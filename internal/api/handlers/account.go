package handlers

import (
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

type AccountHandler struct {
	accountService service.AccountService
	cartService    service.CartService
	validator      *validator.Validate
}

func NewAccountHandler(accountService service.AccountService, cartService service.CartService) *AccountHandler {
	return &AccountHandler{accountService: accountService, cartService: cartService, validator: validator.New()}
}

// resync reloads the cart after the identity changed. Failures only mean a stale cart.
func (h *AccountHandler) resync(r *http.Request, sess *session.Session) {
	if _, err := h.cartService.Sync(r.Context(), sess); err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("Failed to re-sync cart after identity change", slog.Any("error", err))
	}
}

// Login godoc
//	@Summary		Sign in
//	@Description	Signs the profile in as a backend user. Attempts are rate limited per email.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Email and password"
//	@Success		200			{object}	models.LoginResponse	"Signed-in user"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	response.ErrorResponse	"Invalid credentials"
//	@Failure		429			{object}	response.ErrorResponse	"Too many attempts"
//	@Security		ProfileToken
//	@Router			/account/login [post]
func (h *AccountHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		resp, err := h.accountService.Login(r.Context(), sess, &req)
		if err != nil {
			logger.Warn("Login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		h.resync(r, sess)

		logger.Info("User signed in", slog.Int64("userId", resp.User.ID))
		response.Success(w, http.StatusOK, resp)
	}
}

// Register godoc
//	@Summary		Create an account
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"Account details"
//	@Success		201		{object}	models.User				"Registered user"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or email already registered"
//	@Failure		502		{object}	response.ErrorResponse	"Backend unavailable"
//	@Security		ProfileToken
//	@Router			/account/register [post]
func (h *AccountHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")
			return
		}

		user, err := h.accountService.Register(r.Context(), sess, &req)
		if err != nil {
			logger.Error("Registration failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		h.resync(r, sess)

		logger.Info("User registered", slog.Int64("userId", user.ID))
		response.Success(w, http.StatusCreated, user)
	}
}

// Logout godoc
//	@Summary		Sign out
//	@Tags			Account
//	@Produce		json
//	@Success		200	{object}	map[string]string		"Signed out"
//	@Failure		500	{object}	response.ErrorResponse	"Session storage error"
//	@Security		ProfileToken
//	@Router			/account/logout [post]
func (h *AccountHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		if err := h.accountService.Logout(r.Context(), sess); err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Logout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		h.resync(r, sess)

		response.Success(w, http.StatusOK, map[string]string{"message": "Signed out"})
	}
}

// GetProfile godoc
//	@Summary		Get the signed-in user's profile
//	@Tags			Account
//	@Produce		json
//	@Success		200	{object}	models.User				"Profile"
//	@Failure		401	{object}	response.ErrorResponse	"Not signed in"
//	@Security		ProfileToken
//	@Router			/account/profile [get]
func (h *AccountHandler) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		user, err := h.accountService.Profile(r.Context(), sess)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// UpdateProfile godoc
//	@Summary		Update the signed-in user's profile
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		models.UpdateProfileRequest	true	"Profile fields"
//	@Success		200		{object}	models.User					"Updated profile"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Not signed in"
//	@Failure		502		{object}	response.ErrorResponse		"Backend unavailable"
//	@Security		ProfileToken
//	@Router			/account/profile [put]
func (h *AccountHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.UpdateProfileRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid profile input")
			return
		}

		user, err := h.accountService.UpdateProfile(r.Context(), sess, &req)
		if err != nil {
			logger.Error("Failed to update profile", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// ListOrders godoc
//	@Summary		List the signed-in user's orders
//	@Tags			Account
//	@Produce		json
//	@Success		200	{array}		models.Order			"Orders"
//	@Failure		401	{object}	response.ErrorResponse	"Not signed in"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Security		ProfileToken
//	@Router			/account/orders [get]
func (h *AccountHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		orders, err := h.accountService.Orders(r.Context(), sess)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// GetOrder godoc
//	@Summary		Get one of the signed-in user's orders
//	@Tags			Account
//	@Produce		json
//	@Param			id	path		int						true	"Order ID"
//	@Success		200	{object}	models.Order			"Order"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order ID"
//	@Failure		401	{object}	response.ErrorResponse	"Not signed in"
//	@Failure		403	{object}	response.ErrorResponse	"Order belongs to another user"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Security		ProfileToken
//	@Router			/account/orders/{id} [get]
func (h *AccountHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		id, err := utils.PathID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		order, err := h.accountService.Order(r.Context(), sess, id)
		if err != nil {
			logger.Warn("Failed to get order", slog.Int64("orderId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// CancelOrder godoc
//	@Summary		Cancel an order
//	@Description	Only pending or processing orders of the signed-in user can be cancelled.
//	@Tags			Account
//	@Produce		json
//	@Param			id	path		int						true	"Order ID"
//	@Success		200	{object}	models.Order			"Cancelled order"
//	@Failure		400	{object}	response.ErrorResponse	"Order can no longer be cancelled"
//	@Failure		401	{object}	response.ErrorResponse	"Not signed in"
//	@Failure		403	{object}	response.ErrorResponse	"Order belongs to another user"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Security		ProfileToken
//	@Router			/account/orders/{id}/cancel [post]
func (h *AccountHandler) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		id, err := utils.PathID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		order, err := h.accountService.CancelOrder(r.Context(), sess, id)
		if err != nil {
			logger.Warn("Failed to cancel order", slog.Int64("orderId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order cancelled", slog.Int64("orderId", id))
		response.Success(w, http.StatusOK, order)
	}
}
