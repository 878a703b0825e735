package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/backend"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/go-playground/validator/v10"
)

// checkoutPassword is set on accounts created at checkout. Shoppers never sign in with it.
const checkoutPassword = "temp123"

type CheckoutService interface {
	State(ctx context.Context, sess *session.Session) (*models.CheckoutState, error)
	SubmitContact(ctx context.Context, sess *session.Session, contact models.ContactInfo) (*models.CheckoutState, error)
	SubmitShipping(ctx context.Context, sess *session.Session, shipping models.ShippingInfo) (*models.CheckoutState, error)
	Back(ctx context.Context, sess *session.Session) (*models.CheckoutState, error)
	// Place turns the cart into an order while holding the cart lock. A user created before a
	// failed order is kept and the cart is left untouched.
	Place(ctx context.Context, sess *session.Session, form *models.CheckoutForm) (*models.CheckoutResult, error)
}

type checkoutService struct {
	carts    CartService
	users    UserAPI
	orders   OrderAPI
	notifier OrderNotifier
	validate *validator.Validate
}

func NewCheckoutService(carts CartService, users UserAPI, orders OrderAPI, notifier OrderNotifier) CheckoutService {
	return &checkoutService{
		carts:    carts,
		users:    users,
		orders:   orders,
		notifier: notifier,
		validate: validator.New(),
	}
}

func (s *checkoutService) State(ctx context.Context, sess *session.Session) (*models.CheckoutState, error) {

	state, err := sess.Checkout(ctx)
	if err != nil {
		return nil, errors.StorageError("Failed to load checkout").WithError(err)
	}

	return state, nil
}

func (s *checkoutService) save(ctx context.Context, sess *session.Session, state *models.CheckoutState) (*models.CheckoutState, error) {
	if err := sess.SetCheckout(ctx, state); err != nil {
		return nil, errors.StorageError("Failed to save checkout").WithError(err)
	}

	return state, nil
}

func (s *checkoutService) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return errors.ValidationError("Please complete all required fields").WithDetail(err.Error()).WithError(err)
	}

	return nil
}

func cleanContact(c *models.ContactInfo) {
	cleanAll(&c.FirstName, &c.LastName, &c.Phone)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
}

func cleanShipping(sh *models.ShippingInfo) {
	cleanAll(&sh.Address, &sh.City, &sh.PostalCode)
}

func (s *checkoutService) SubmitContact(ctx context.Context, sess *session.Session, contact models.ContactInfo) (*models.CheckoutState, error) {

	cleanContact(&contact)

	if err := s.check(contact); err != nil {
		return nil, err
	}

	state, err := s.State(ctx, sess)
	if err != nil {
		return nil, err
	}

	state.Contact = contact
	state.Step = models.CheckoutStepShipping

	return s.save(ctx, sess, state)
}

func (s *checkoutService) SubmitShipping(ctx context.Context, sess *session.Session, shipping models.ShippingInfo) (*models.CheckoutState, error) {

	cleanShipping(&shipping)

	if err := s.check(shipping); err != nil {
		return nil, err
	}

	state, err := s.State(ctx, sess)
	if err != nil {
		return nil, err
	}

	if state.Step < models.CheckoutStepShipping {
		return nil, errors.BadRequestError("Contact information must be submitted first")
	}

	state.Shipping = shipping
	state.Step = models.CheckoutStepPayment

	return s.save(ctx, sess, state)
}

func (s *checkoutService) Back(ctx context.Context, sess *session.Session) (*models.CheckoutState, error) {

	state, err := s.State(ctx, sess)
	if err != nil {
		return nil, err
	}

	state.Step = max(state.Step-1, models.CheckoutStepContact)

	return s.save(ctx, sess, state)
}

func (s *checkoutService) Place(ctx context.Context, sess *session.Session, form *models.CheckoutForm) (*models.CheckoutResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	cleanContact(&form.Contact)
	cleanShipping(&form.Shipping)

	if err := s.check(form); err != nil {
		return nil, err
	}

	var order *models.Order

	cart, err := s.carts.Checkout(ctx, sess, func(lines []models.CartLine) error {

		customer, err := s.customer(ctx, form)
		if err != nil {
			return err
		}

		if err := sess.SetUserID(ctx, customer.ID); err != nil {
			logger.Warn("Failed to persist user id", slog.Int64("userId", customer.ID), slog.String("error", err.Error()))
		}

		items := make([]models.OrderItemRequest, 0, len(lines))
		for _, line := range lines {
			items = append(items, models.OrderItemRequest{ProductID: line.Product.ID, Quantity: line.Quantity})
		}

		order, err = s.orders.CreateOrder(ctx, customer.ID, items)
		if err != nil {
			logger.Error("Failed to create order", slog.Int64("userId", customer.ID), slog.String("error", err.Error()))
			return errors.FromBackend(err, "Failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Order placed",
		slog.Int64("orderId", order.ID),
		slog.Int64("userId", order.UserID),
		slog.Int("lines", len(order.Lines)),
		slog.String("total", order.Total.StringFixed(2)),
	)

	result := &models.CheckoutResult{Order: order, Cart: cart}

	if err := sess.ClearCheckout(ctx); err != nil {
		logger.Warn("Failed to reset checkout", slog.String("error", err.Error()))
	}

	if err := s.notifier.OrderPlaced(ctx, form.Contact, order); err != nil {
		logger.Warn("Order confirmation not sent", slog.Int64("orderId", order.ID), slog.String("error", err.Error()))
	}

	return result, nil
}

// customer finds the account for the submitted email or creates one.
func (s *checkoutService) customer(ctx context.Context, form *models.CheckoutForm) (*models.User, error) {

	user, err := s.users.GetUserByEmail(ctx, form.Contact.Email)
	if err == nil {
		return user, nil
	}

	middleware.LoggerFromContext(ctx).Info("No account for checkout email, registering one", slog.String("error", err.Error()))

	user, err = s.users.Register(ctx, &backend.NewUser{
		FirstName: form.Contact.FirstName,
		LastName:  form.Contact.LastName,
		Email:     form.Contact.Email,
		Phone:     form.Contact.Phone,
		Address:   fmt.Sprintf("%s, %s %s", form.Shipping.Address, form.Shipping.City, form.Shipping.PostalCode),
		Password:  checkoutPassword,
	})
	if err != nil {
		return nil, errors.FromBackend(err, "Failed to create customer account")
	}

	return user, nil
}
