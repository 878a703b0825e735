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

type FavoritesHandler struct {
	favoritesService service.FavoritesService
	validator        *validator.Validate
}

func NewFavoritesHandler(favoritesService service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favoritesService: favoritesService, validator: validator.New()}
}

// ListFavorites godoc
//	@Summary		List favorites
//	@Tags			Favorites
//	@Produce		json
//	@Success		200	{array}	models.Product	"Favorite products in insertion order"
//	@Security		ProfileToken
//	@Router			/favorites [get]
func (h *FavoritesHandler) ListFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, h.favoritesService.List(r.Context(), sess))
	}
}

// ToggleFavorite godoc
//	@Summary		Toggle a favorite
//	@Description	Adds the product to the favorites, or removes it when it already is one. Send either a product snapshot or its id.
//	@Tags			Favorites
//	@Accept			json
//	@Produce		json
//	@Param			favorite	body		models.ToggleFavoriteRequest	true	"Product snapshot or id"
//	@Success		200			{object}	models.FavoriteToggleResponse	"Resulting favorites"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		404			{object}	response.ErrorResponse			"Product not found"
//	@Failure		500			{object}	response.ErrorResponse			"Favorites could not be saved"
//	@Security		ProfileToken
//	@Router			/favorites/toggle [post]
func (h *FavoritesHandler) ToggleFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.ToggleFavoriteRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid toggle favorite input")
			return
		}

		var (
			isFavorite bool
			favorites  []models.Product
			err        error
		)

		switch {
		case req.Product != nil:
			isFavorite, favorites, err = h.favoritesService.Toggle(r.Context(), sess, *req.Product)
		case req.ProductID > 0:
			isFavorite, favorites, err = h.favoritesService.ToggleByID(r.Context(), sess, req.ProductID)
		default:
			err = errors.AddValidationError("product_id", "a product or product_id is required")
		}

		if err != nil {
			logger.Error("Failed to toggle favorite", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.FavoriteToggleResponse{IsFavorite: isFavorite, Favorites: favorites})
	}
}

// IsFavorite godoc
//	@Summary		Check a favorite
//	@Tags			Favorites
//	@Produce		json
//	@Param			id	path		int						true	"Product ID"
//	@Success		200	{object}	map[string]bool			"is_favorite flag"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Security		ProfileToken
//	@Router			/favorites/{id} [get]
func (h *FavoritesHandler) IsFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := requireSession(w, r)
		if !ok {
			return
		}

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]bool{"is_favorite": h.favoritesService.IsFavorite(r.Context(), sess, id)})
	}
}
