package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

// NewUser is a registration as the API receives it. Password travels once and is never kept.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Password  string
}

// UserUpdate carries only the fields to change; empty fields are left as they are.
type UserUpdate struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Status    models.Status
}

func (c *Client) listUsers(ctx context.Context, path string) ([]models.User, error) {
	var wire []wireUser

	if err := c.do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}

	if err := checkAll(c, "user", wire); err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(wire))
	for i := range wire {
		users = append(users, *wire[i].model())
	}

	return users, nil
}

func (c *Client) oneUser(ctx context.Context, method, path string, body any) (*models.User, error) {
	var wire wireUser

	if err := c.do(ctx, method, path, body, &wire); err != nil {
		return nil, err
	}

	if err := c.check("user", &wire); err != nil {
		return nil, err
	}

	return wire.model(), nil
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	return c.listUsers(ctx, "/users")
}

func (c *Client) ListActiveUsers(ctx context.Context) ([]models.User, error) {
	return c.listUsers(ctx, "/users/active")
}

func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return c.oneUser(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return c.oneUser(ctx, http.MethodGet, "/users/email/"+url.PathEscape(email), nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	return c.oneUser(ctx, http.MethodPost, "/users/login", wireLogin{Email: email, Password: password})
}

// Register creates an ACTIVE user.
func (c *Client) Register(ctx context.Context, in *NewUser) (*models.User, error) {
	body := wireRegister{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Status:    wireActive,
		Password:  in.Password,
	}

	return c.oneUser(ctx, http.MethodPost, "/users/register", body)
}

func (c *Client) UpdateUser(ctx context.Context, id int64, in *UserUpdate) (*models.User, error) {
	body := wireUserUpdate{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
	}

	if in.Status != "" {
		body.Status = statusToWire(in.Status)
	}

	return c.oneUser(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), body)
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
