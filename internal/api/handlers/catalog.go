package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Lists active products filtered by category (id or name slug) and search text, then sorted.
//	@Tags			Catalog
//	@Produce		json
//	@Param			categoria	query		string					false	"Category id or slug"
//	@Param			buscar		query		string					false	"Search text (name or description)"
//	@Param			sort		query		string					false	"Sort order"	Enums(name, price-asc, price-desc)
//	@Success		200			{object}	models.ProductListing	"Filtered listing"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid sort order"
//	@Failure		502			{object}	response.ErrorResponse	"Backend unavailable"
//	@Router			/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		params := r.URL.Query()
		query := models.ProductQuery{
			Category: params.Get("categoria"),
			Search:   params.Get("buscar"),
			SortBy:   params.Get("sort"),
		}

		if err := utils.ValidateStruct(h.validator, query); err != nil {
			logger.Warn("Invalid product query", slog.String("error", err.Error()))
			response.Error(w, errors.AddValidationError("sort", "must be one of name, price-asc, price-desc"))
			return
		}

		listing, err := h.catalogService.List(r.Context(), query)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, listing)
	}
}

// FeaturedProducts godoc
//	@Summary		Featured products
//	@Description	The first active products, as shown on the home page.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		models.Product			"Featured products"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Router			/products/featured [get]
func (h *CatalogHandler) FeaturedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.catalogService.Featured(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to load featured products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//	@Summary		Get a product by ID
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		int						true	"Product ID"
//	@Success		200	{object}	models.Product			"Product detail"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		product, err := h.catalogService.Product(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListCategories godoc
//	@Summary		List active categories
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		models.Category			"Active categories"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Router			/categories [get]
func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.catalogService.Categories(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// CategoryProducts godoc
//	@Summary		List the products of one category
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		int						true	"Category ID"
//	@Success		200	{array}		models.Product			"Products in the category"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid category ID"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unavailable"
//	@Router			/categories/{id}/products [get]
func (h *CatalogHandler) CategoryProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			logger.Warn("Invalid category id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		products, err := h.catalogService.ProductsByCategory(r.Context(), id)
		if err != nil {
			logger.Error("Failed to list category products", slog.Int64("categoryId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}
