package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/catalog"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
)

type CatalogService interface {
	List(ctx context.Context, query models.ProductQuery) (*models.ProductListing, error)
	Featured(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id int64) (*models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
	ProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error)
}

type catalogService struct {
	api CatalogAPI
	cfg config.Catalog
}

func NewCatalogService(api CatalogAPI, cfg config.Catalog) CatalogService {
	return &catalogService{api: api, cfg: cfg}
}

func (s *catalogService) List(ctx context.Context, query models.ProductQuery) (*models.ProductListing, error) {

	products, err := s.api.ListActiveProducts(ctx)
	if err != nil {
		return nil, errors.FromBackend(err, "Failed to load products")
	}

	var categories []models.Category

	// only slugs need the category list
	if _, resolved := catalog.ResolveCategory(query.Category, nil); !resolved {
		categories, err = s.api.ListActiveCategories(ctx)
		if err != nil {
			return nil, errors.FromBackend(err, "Failed to load categories")
		}
	}

	listing := catalog.Apply(products, categories, query, s.cfg.Locale)

	middleware.LoggerFromContext(ctx).Debug("Product listing computed",
		slog.String("category", query.Category),
		slog.String("search", query.Search),
		slog.String("sort", query.SortBy),
		slog.Int("total", listing.Total),
	)

	return &listing, nil
}

func (s *catalogService) Featured(ctx context.Context) ([]models.Product, error) {

	products, err := s.api.ListActiveProducts(ctx)
	if err != nil {
		return nil, errors.FromBackend(err, "Failed to load products")
	}

	if len(products) > s.cfg.FeaturedLimit {
		products = products[:s.cfg.FeaturedLimit]
	}

	return products, nil
}

func (s *catalogService) Product(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return nil, errors.FromBackend(err, "Failed to load product")
	}

	return product, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]models.Category, error) {

	categories, err := s.api.ListActiveCategories(ctx)
	if err != nil {
		return nil, errors.FromBackend(err, "Failed to load categories")
	}

	return categories, nil
}

func (s *catalogService) ProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {

	products, err := s.api.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.FromBackend(err, "Failed to load products")
	}

	return products, nil
}
