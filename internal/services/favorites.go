package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/session"
)

type FavoritesService interface {
	List(ctx context.Context, sess *session.Session) []models.Product
	// Toggle removes product when it is a favorite and appends it otherwise. It reports whether
	// the product is a favorite afterwards.
	Toggle(ctx context.Context, sess *session.Session, product models.Product) (bool, []models.Product, error)
	// ToggleByID is Toggle for callers holding only an id; the snapshot is fetched when adding.
	ToggleByID(ctx context.Context, sess *session.Session, productID int64) (bool, []models.Product, error)
	IsFavorite(ctx context.Context, sess *session.Session, productID int64) bool
}

type favoritesService struct {
	products CatalogAPI
}

func NewFavoritesService(products CatalogAPI) FavoritesService {
	return &favoritesService{products: products}
}

// load treats an unreadable list as empty.
func (s *favoritesService) load(ctx context.Context, sess *session.Session) []models.Product {
	favorites, err := sess.Favorites(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to load favorites", slog.String("error", err.Error()))
		return []models.Product{}
	}

	if favorites == nil {
		favorites = []models.Product{}
	}

	return favorites
}

func (s *favoritesService) List(ctx context.Context, sess *session.Session) []models.Product {
	return s.load(ctx, sess)
}

func (s *favoritesService) IsFavorite(ctx context.Context, sess *session.Session, productID int64) bool {
	return slices.ContainsFunc(s.load(ctx, sess), func(p models.Product) bool { return p.ID == productID })
}

func (s *favoritesService) Toggle(ctx context.Context, sess *session.Session, product models.Product) (bool, []models.Product, error) {

	if product.ID <= 0 {
		return false, nil, errors.AddValidationError("product_id", "must be positive")
	}

	favorites := s.load(ctx, sess)

	idx := slices.IndexFunc(favorites, func(p models.Product) bool { return p.ID == product.ID })

	isFavorite := idx < 0
	if isFavorite {
		favorites = append(favorites, product)
	} else {
		favorites = slices.Delete(favorites, idx, idx+1)
	}

	if err := sess.SetFavorites(ctx, favorites); err != nil {
		return false, nil, errors.StorageError("Failed to save favorites").WithError(err)
	}

	return isFavorite, favorites, nil
}

func (s *favoritesService) ToggleByID(ctx context.Context, sess *session.Session, productID int64) (bool, []models.Product, error) {

	if s.IsFavorite(ctx, sess, productID) {
		return s.Toggle(ctx, sess, models.Product{ID: productID})
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return false, nil, errors.FromBackend(err, "Failed to load product")
	}

	return s.Toggle(ctx, sess, *product)
}
