package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The backend and the SPA both exchange prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status"`
}

// Product is always the backend's current snapshot; the storefront never edits one in place.
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	Category     *Category       `json:"category,omitempty"`
	Image        string          `json:"image,omitempty"`
	Status       Status          `json:"status"`
	RegisteredAt *time.Time      `json:"registered_at,omitempty"`
}

type ProductInput struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CategoryID  int64           `json:"category_id" validate:"required,gt=0"`
	Image       string          `json:"image,omitempty" validate:"omitempty,url"`
	Status      Status          `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

const (
	SortByName      = "name"
	SortByPriceAsc  = "price-asc"
	SortByPriceDesc = "price-desc"
)

// ProductQuery drives the listing pipeline. Category holds either a numeric id or a name slug.
type ProductQuery struct {
	Category string `json:"categoria,omitempty"`
	Search   string `json:"buscar,omitempty"`
	SortBy   string `json:"sort,omitempty" validate:"omitempty,oneof=name price-asc price-desc"`
}

type ProductListing struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	// CategoryID is the category the query resolved to, 0 when unfiltered.
	CategoryID int64 `json:"category_id,omitempty"`
}

// ToggleFavoriteRequest carries either a product snapshot or just its id.
type ToggleFavoriteRequest struct {
	ProductID int64    `json:"product_id" validate:"omitempty,gt=0"`
	Product   *Product `json:"product,omitempty"`
}

type FavoriteToggleResponse struct {
	IsFavorite bool      `json:"is_favorite"`
	Favorites  []Product `json:"favorites"`
}
