package service

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/backend"
	"github.com/aaravmahajanofficial/storefront/internal/models"
)

// The services depend on the parts of the remote API they use. *backend.Client satisfies all.

type UserAPI interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, in *backend.NewUser) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, in *backend.UserUpdate) (*models.User, error)
}

type CartAPI interface {
	GetCart(ctx context.Context, userID int64) ([]models.CartLine, error)
	AddCartLine(ctx context.Context, userID, productID int64, quantity int) ([]models.CartLine, error)
	RemoveCartLine(ctx context.Context, userID, lineID int64) ([]models.CartLine, error)
	ClearCart(ctx context.Context, userID int64) error
}

type CatalogAPI interface {
	ListActiveProducts(ctx context.Context) ([]models.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	ListActiveCategories(ctx context.Context) ([]models.Category, error)
}

type OrderAPI interface {
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error)
	CreateOrder(ctx context.Context, userID int64, items []models.OrderItemRequest) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
}

var (
	_ UserAPI    = (*backend.Client)(nil)
	_ CartAPI    = (*backend.Client)(nil)
	_ CatalogAPI = (*backend.Client)(nil)
	_ OrderAPI   = (*backend.Client)(nil)
)
