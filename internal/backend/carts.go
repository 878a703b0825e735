package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

// Every cart call answers with the user's full cart, which callers adopt wholesale.
func (c *Client) cart(ctx context.Context, method, path string, body any) ([]models.CartLine, error) {
	var wire wireCart

	if err := c.do(ctx, method, path, body, &wire); err != nil {
		return nil, err
	}

	if err := c.check("cart", &wire); err != nil {
		return nil, err
	}

	return wire.lines(), nil
}

func (c *Client) GetCart(ctx context.Context, userID int64) ([]models.CartLine, error) {
	return c.cart(ctx, http.MethodGet, fmt.Sprintf("/cart/user/%d", userID), nil)
}

// AddCartLine relies on the API to merge quantities when the product is already in the cart.
func (c *Client) AddCartLine(ctx context.Context, userID, productID int64, quantity int) ([]models.CartLine, error) {
	body := wireCartAdd{ProductID: productID, Quantity: quantity}

	return c.cart(ctx, http.MethodPost, fmt.Sprintf("/cart/user/%d/items", userID), body)
}

func (c *Client) RemoveCartLine(ctx context.Context, userID, lineID int64) ([]models.CartLine, error) {
	return c.cart(ctx, http.MethodDelete, fmt.Sprintf("/cart/user/%d/items/%d", userID, lineID), nil)
}

// ClearCart empties the cart in one call. The response body is ignored; callers re-fetch.
func (c *Client) ClearCart(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/user/%d", userID), nil, nil)
}
