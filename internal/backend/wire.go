package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// Status values as the API spells them.
const (
	wireActive   = "ACTIVO"
	wireInactive = "INACTIVO"
)

var orderStatusFromWire = map[string]models.OrderStatus{
	"PENDIENTE":  models.OrderStatusPending,
	"PROCESANDO": models.OrderStatusProcessing,
	"ENVIADO":    models.OrderStatusShipped,
	"ENTREGADO":  models.OrderStatusDelivered,
	"CANCELADO":  models.OrderStatusCancelled,
}

func orderStatusToWire(status models.OrderStatus) (string, error) {
	for wire, s := range orderStatusFromWire {
		if s == status {
			return wire, nil
		}
	}

	return "", fmt.Errorf("unknown order status %q", status)
}

func statusFromWire(s string) models.Status {
	if s == wireInactive {
		return models.StatusInactive
	}

	return models.StatusActive
}

func statusToWire(s models.Status) string {
	if s == models.StatusInactive {
		return wireInactive
	}

	return wireActive
}

// wireTime accepts the timestamp layouts the API is known to emit, with or without a zone.
type wireTime struct {
	time.Time
}

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw == "" {
		return nil
	}

	for _, layout := range wireTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unrecognised timestamp %q", raw)
}

func (t *wireTime) ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}

	v := t.Time

	return &v
}

type wireCategory struct {
	ID          int64  `json:"idCategoria" validate:"required,gt=0"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
	Status      string `json:"estado" validate:"omitempty,oneof=ACTIVO INACTIVO"`
}

func (w *wireCategory) model() models.Category {
	return models.Category{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Status:      statusFromWire(w.Status),
	}
}

type wireProduct struct {
	ID           int64           `json:"idProducto" validate:"required,gt=0"`
	Name         string          `json:"nombre" validate:"required"`
	Description  string          `json:"descripcion,omitempty"`
	Price        decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
	CategoryID   int64           `json:"idCategoria"`
	CategoryName string          `json:"nombreCategoria,omitempty"`
	Category     *wireCategory   `json:"categoria,omitempty" validate:"-"`
	Image        string          `json:"imagen,omitempty"`
	Status       string          `json:"estado" validate:"omitempty,oneof=ACTIVO INACTIVO"`
	RegisteredAt *wireTime       `json:"fechaRegistro,omitempty"`
}

func (w *wireProduct) model() models.Product {
	p := models.Product{
		ID:           w.ID,
		Name:         w.Name,
		Description:  w.Description,
		Price:        w.Price,
		Stock:        w.Stock,
		CategoryID:   w.CategoryID,
		CategoryName: w.CategoryName,
		Image:        w.Image,
		Status:       statusFromWire(w.Status),
		RegisteredAt: w.RegisteredAt.ptr(),
	}

	if w.Category != nil {
		c := w.Category.model()
		p.Category = &c

		if p.CategoryID == 0 {
			p.CategoryID = c.ID
		}

		if p.CategoryName == "" {
			p.CategoryName = c.Name
		}
	}

	return p
}

type wireProductInput struct {
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion,omitempty"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	CategoryID  int64           `json:"idCategoria"`
	Image       string          `json:"imagen,omitempty"`
	Status      string          `json:"estado"`
}

type wireCategoryInput struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
	Status      string `json:"estado"`
}

type wireUser struct {
	ID           int64     `json:"idUsuario" validate:"required,gt=0"`
	FirstName    string    `json:"nombre"`
	LastName     string    `json:"apellido,omitempty"`
	Email        string    `json:"email" validate:"required"`
	Phone        string    `json:"telefono,omitempty"`
	Address      string    `json:"direccion,omitempty"`
	RegisteredAt *wireTime `json:"fechaRegistro,omitempty"`
	Status       string    `json:"estado" validate:"omitempty,oneof=ACTIVO INACTIVO"`
}

func (w *wireUser) model() *models.User {
	return &models.User{
		ID:           w.ID,
		FirstName:    w.FirstName,
		LastName:     w.LastName,
		Email:        w.Email,
		Phone:        w.Phone,
		Address:      w.Address,
		RegisteredAt: w.RegisteredAt.ptr(),
		Status:       statusFromWire(w.Status),
	}
}

type wireRegister struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"telefono,omitempty"`
	Address   string `json:"direccion,omitempty"`
	Status    string `json:"estado"`
	Password  string `json:"contraseña"`
}

type wireUserUpdate struct {
	FirstName string `json:"nombre,omitempty"`
	LastName  string `json:"apellido,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"telefono,omitempty"`
	Address   string `json:"direccion,omitempty"`
	Status    string `json:"estado,omitempty"`
}

type wireLogin struct {
	Email    string `json:"email"`
	Password string `json:"contraseña"`
}

type wireCartLine struct {
	ID          int64           `json:"idDetalle" validate:"required,gt=0"`
	ProductID   int64           `json:"idProducto" validate:"required,gt=0"`
	ProductName string          `json:"nombreProducto"`
	Quantity    int             `json:"cantidad" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"precioUnitario"`
}

type wireCart struct {
	ID        int64          `json:"idCarrito"`
	UserID    int64          `json:"idUsuario"`
	CreatedAt *wireTime      `json:"fechaCreacion,omitempty"`
	Lines     []wireCartLine `json:"detalles,omitempty" validate:"dive"`
}

// lines maps the record set onto cart lines, keeping the API's order.
func (w *wireCart) lines() []models.CartLine {
	lines := make([]models.CartLine, 0, len(w.Lines))

	for _, l := range w.Lines {
		lines = append(lines, models.CartLine{
			ID: l.ID,
			Product: models.Product{
				ID:     l.ProductID,
				Name:   l.ProductName,
				Price:  l.UnitPrice,
				Status: models.StatusActive,
			},
			Quantity: l.Quantity,
		})
	}

	return lines
}

type wireCartAdd struct {
	ProductID int64 `json:"idProducto"`
	Quantity  int   `json:"cantidad"`
}

type wireOrderLine struct {
	ProductID   int64           `json:"idProducto" validate:"required,gt=0"`
	ProductName string          `json:"nombreProducto,omitempty"`
	Quantity    int             `json:"cantidad" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"precioUnitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type wireOrder struct {
	ID       int64           `json:"idOrden" validate:"required,gt=0"`
	UserID   int64           `json:"idUsuario"`
	UserName string          `json:"nombreUsuario,omitempty"`
	PlacedAt *wireTime       `json:"fechaOrden,omitempty"`
	Total    decimal.Decimal `json:"total"`
	Status   string          `json:"estado" validate:"required,oneof=PENDIENTE PROCESANDO ENVIADO ENTREGADO CANCELADO"`
	Lines    []wireOrderLine `json:"detalles,omitempty" validate:"dive"`
}

func (w *wireOrder) model() *models.Order {
	order := &models.Order{
		ID:       w.ID,
		UserID:   w.UserID,
		UserName: w.UserName,
		PlacedAt: w.PlacedAt.ptr(),
		Total:    w.Total,
		Status:   orderStatusFromWire[w.Status],
		Lines:    make([]models.OrderLine, 0, len(w.Lines)),
	}

	for _, l := range w.Lines {
		order.Lines = append(order.Lines, models.OrderLine{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}

	return order
}

type wireOrderItem struct {
	ProductID int64 `json:"idProducto"`
	Quantity  int   `json:"cantidad"`
}

type wireOrderCreate struct {
	UserID int64           `json:"idUsuario"`
	Lines  []wireOrderItem `json:"detalles"`
}

type wireOrderStatus struct {
	Status string `json:"estado"`
}
