package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

func (c *Client) listProducts(ctx context.Context, path string) ([]models.Product, error) {
	var wire []wireProduct

	if err := c.do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}

	if err := checkAll(c, "product", wire); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(wire))
	for i := range wire {
		products = append(products, wire[i].model())
	}

	return products, nil
}

func (c *Client) oneProduct(ctx context.Context, method, path string, body any) (*models.Product, error) {
	var wire wireProduct

	if err := c.do(ctx, method, path, body, &wire); err != nil {
		return nil, err
	}

	if err := c.check("product", &wire); err != nil {
		return nil, err
	}

	p := wire.model()

	return &p, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	return c.listProducts(ctx, "/products")
}

func (c *Client) ListActiveProducts(ctx context.Context) ([]models.Product, error) {
	return c.listProducts(ctx, "/products/active")
}

func (c *Client) ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	return c.listProducts(ctx, fmt.Sprintf("/products/category/%d", categoryID))
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return c.oneProduct(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
}

func productInput(in *models.ProductInput) wireProductInput {
	return wireProductInput{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		Image:       in.Image,
		Status:      statusToWire(in.Status),
	}
}

func (c *Client) CreateProduct(ctx context.Context, in *models.ProductInput) (*models.Product, error) {
	return c.oneProduct(ctx, http.MethodPost, "/products", productInput(in))
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in *models.ProductInput) (*models.Product, error) {
	return c.oneProduct(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), productInput(in))
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}
