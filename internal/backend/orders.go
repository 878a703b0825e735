package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

func (c *Client) listOrders(ctx context.Context, path string) ([]models.Order, error) {
	var wire []wireOrder

	if err := c.do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}

	if err := checkAll(c, "order", wire); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(wire))
	for i := range wire {
		orders = append(orders, *wire[i].model())
	}

	return orders, nil
}

func (c *Client) oneOrder(ctx context.Context, method, path string, body any) (*models.Order, error) {
	var wire wireOrder

	if err := c.do(ctx, method, path, body, &wire); err != nil {
		return nil, err
	}

	if err := c.check("order", &wire); err != nil {
		return nil, err
	}

	return wire.model(), nil
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	return c.listOrders(ctx, "/orders")
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	return c.oneOrder(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil)
}

func (c *Client) ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	return c.listOrders(ctx, fmt.Sprintf("/orders/user/%d", userID))
}

// CreateOrder sends product ids and quantities only; the API prices the order.
func (c *Client) CreateOrder(ctx context.Context, userID int64, items []models.OrderItemRequest) (*models.Order, error) {
	body := wireOrderCreate{UserID: userID, Lines: make([]wireOrderItem, 0, len(items))}

	for _, item := range items {
		body.Lines = append(body.Lines, wireOrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	return c.oneOrder(ctx, http.MethodPost, "/orders", body)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	wire, err := orderStatusToWire(status)
	if err != nil {
		return nil, err
	}

	return c.oneOrder(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/estado", id), wireOrderStatus{Status: wire})
}
