package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/backend"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/ratelimit"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/go-playground/validator/v10"
)

type AccountService interface {
	Login(ctx context.Context, sess *session.Session, req *models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, sess *session.Session, req *models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context, sess *session.Session) error
	Profile(ctx context.Context, sess *session.Session) (*models.User, error)
	UpdateProfile(ctx context.Context, sess *session.Session, req *models.UpdateProfileRequest) (*models.User, error)
	Orders(ctx context.Context, sess *session.Session) ([]models.Order, error)
	Order(ctx context.Context, sess *session.Session, id int64) (*models.Order, error)
	CancelOrder(ctx context.Context, sess *session.Session, id int64) (*models.Order, error)
}

type accountService struct {
	users    UserAPI
	orders   OrderAPI
	limiter  ratelimit.Limiter
	validate *validator.Validate
}

func NewAccountService(users UserAPI, orders OrderAPI, limiter ratelimit.Limiter) AccountService {
	return &accountService{users: users, orders: orders, limiter: limiter, validate: validator.New()}
}

func (s *accountService) signIn(ctx context.Context, sess *session.Session, user *models.User) error {
	if err := sess.SetCurrentUser(ctx, user); err != nil {
		return errors.StorageError("Failed to save session").WithError(err)
	}

	if err := sess.SetUserID(ctx, user.ID); err != nil {
		return errors.StorageError("Failed to save session").WithError(err)
	}

	return nil
}

func (s *accountService) Login(ctx context.Context, sess *session.Session, req *models.LoginRequest) (*models.LoginResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validate.Struct(req); err != nil {
		return nil, errors.ValidationError("Please complete all fields").WithError(err)
	}

	decision, err := s.limiter.CheckLogin(ctx, req.Email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !decision.Allowed {
		return nil, errors.TooManyRequestsError("Too many login attempts. Please try again later.").
			WithDetail(fmt.Sprintf("retry after %d seconds", decision.RetryAfter))
	}

	user, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed", slog.String("email", req.Email), slog.String("error", err.Error()))

		if errors.IsStatus(err, http.StatusUnauthorized) || errors.IsStatus(err, http.StatusNotFound) || errors.IsStatus(err, http.StatusBadRequest) {
			return nil, errors.UnauthorizedError("Invalid email or password").
				WithDetail(fmt.Sprintf("%d attempts remaining", decision.Remaining)).
				WithError(err)
		}

		return nil, errors.FromBackend(err, "Login failed")
	}

	if err := s.signIn(ctx, sess, user); err != nil {
		return nil, err
	}

	logger.Info("Shopper signed in", slog.Int64("userId", user.ID))

	return &models.LoginResponse{User: user, RemainingTries: decision.Remaining}, nil
}

func (s *accountService) Register(ctx context.Context, sess *session.Session, req *models.RegisterRequest) (*models.User, error) {

	cleanAll(&req.FirstName, &req.LastName, &req.Phone, &req.Address)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validate.Struct(req); err != nil {
		if strings.Contains(err.Error(), "'Password'") {
			return nil, errors.AddValidationError("password", "must be at least 6 characters").WithError(err)
		}

		return nil, errors.ValidationError("Please complete all required fields").WithDetail(err.Error()).WithError(err)
	}

	user, err := s.users.Register(ctx, &backend.NewUser{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Password:  req.Password,
	})
	if err != nil {
		return nil, errors.FromBackend(err, "Could not create the account. The email may already be registered.")
	}

	if err := s.signIn(ctx, sess, user); err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("Shopper registered", slog.Int64("userId", user.ID))

	return user, nil
}

// Logout forgets the signed-in user. The stored user id stays so the cart keeps resolving.
func (s *accountService) Logout(ctx context.Context, sess *session.Session) error {
	if err := sess.ClearCurrentUser(ctx); err != nil {
		return errors.StorageError("Failed to sign out").WithError(err)
	}

	return nil
}

func (s *accountService) Profile(ctx context.Context, sess *session.Session) (*models.User, error) {

	user, err := sess.CurrentUser(ctx)
	if err != nil {
		return nil, errors.StorageError("Failed to load session").WithError(err)
	}

	if user == nil {
		return nil, errors.UnauthorizedError("Not signed in")
	}

	return user, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, sess *session.Session, req *models.UpdateProfileRequest) (*models.User, error) {

	current, err := s.Profile(ctx, sess)
	if err != nil {
		return nil, err
	}

	cleanAll(&req.FirstName, &req.LastName, &req.Phone, &req.Address)

	if err := s.validate.Struct(req); err != nil {
		return nil, errors.ValidationError("Invalid profile data").WithDetail(err.Error()).WithError(err)
	}

	updated, err := s.users.UpdateUser(ctx, current.ID, &backend.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return nil, errors.FromBackend(err, "Failed to update profile")
	}

	if err := sess.SetCurrentUser(ctx, updated); err != nil {
		return nil, errors.StorageError("Failed to save session").WithError(err)
	}

	return updated, nil
}

func (s *accountService) Orders(ctx context.Context, sess *session.Session) ([]models.Order, error) {

	user, err := s.Profile(ctx, sess)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListOrdersByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.FromBackend(err, "Failed to load orders")
	}

	return orders, nil
}

func (s *accountService) Order(ctx context.Context, sess *session.Session, id int64) (*models.Order, error) {

	user, err := s.Profile(ctx, sess)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, errors.FromBackend(err, "Failed to load order")
	}

	if order.UserID != user.ID {
		return nil, errors.ForbiddenError("Order belongs to another user")
	}

	return order, nil
}

func (s *accountService) CancelOrder(ctx context.Context, sess *session.Session, id int64) (*models.Order, error) {

	order, err := s.Order(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.Cancellable() {
		return nil, errors.BadRequestError(fmt.Sprintf("Order in status %s can no longer be cancelled", order.Status))
	}

	cancelled, err := s.orders.UpdateOrderStatus(ctx, id, models.OrderStatusCancelled)
	if err != nil {
		return nil, errors.FromBackend(err, "Failed to cancel order")
	}

	middleware.LoggerFromContext(ctx).Info("Order cancelled", slog.Int64("orderId", id), slog.Int64("userId", order.UserID))

	return cancelled, nil
}
