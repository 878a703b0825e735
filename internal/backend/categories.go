package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

func (c *Client) listCategories(ctx context.Context, path string) ([]models.Category, error) {
	var wire []wireCategory

	if err := c.do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}

	if err := checkAll(c, "category", wire); err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(wire))
	for i := range wire {
		categories = append(categories, wire[i].model())
	}

	return categories, nil
}

func (c *Client) oneCategory(ctx context.Context, method, path string, body any) (*models.Category, error) {
	var wire wireCategory

	if err := c.do(ctx, method, path, body, &wire); err != nil {
		return nil, err
	}

	if err := c.check("category", &wire); err != nil {
		return nil, err
	}

	category := wire.model()

	return &category, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	return c.listCategories(ctx, "/categories")
}

func (c *Client) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	return c.listCategories(ctx, "/categories/active")
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	return c.oneCategory(ctx, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil)
}

func categoryInput(in *models.CategoryInput) wireCategoryInput {
	return wireCategoryInput{
		Name:        in.Name,
		Description: in.Description,
		Status:      statusToWire(in.Status),
	}
}

func (c *Client) CreateCategory(ctx context.Context, in *models.CategoryInput) (*models.Category, error) {
	return c.oneCategory(ctx, http.MethodPost, "/categories", categoryInput(in))
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, in *models.CategoryInput) (*models.Category, error) {
	return c.oneCategory(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), categoryInput(in))
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}
