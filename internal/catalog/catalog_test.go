package catalog_test

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/catalog"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, name, description string, price string, categoryID int64) models.Product {
	return models.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		CategoryID:  categoryID,
		Status:      models.StatusActive,
	}
}

var (
	categories = []models.Category{
		{ID: 1, Name: "Electrónica"},
		{ID: 2, Name: "Hogar & Jardín"},
	}

	products = []models.Product{
		product(10, "Galaxy S25", "Teléfono insignia", "899.99", 1),
		product(11, "Smart TV", "Pantalla 55 pulgadas", "499", 1),
		product(12, "Ñandú de cerámica", "Decoración", "25", 2),
		product(13, "árbol artificial", "Decoración navideña", "60", 2),
		product(14, "Zapatero", "Organizador", "25", 2),
	}
)

func names(listing models.ProductListing) []string {
	out := make([]string, 0, len(listing.Products))
	for _, p := range listing.Products {
		out = append(out, p.Name)
	}

	return out
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Electrónica", "electronica"},
		{"Hogar & Jardín", "hogar-jardin"},
		{"  Ropa_de   Niños--", "ropa-de-ninos"},
		{"---", ""},
		{"Café 100%", "cafe-100"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.Slugify(tc.in))
		})
	}
}

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		wantID   int64
		wantOK   bool
	}{
		{"Empty means unfiltered", "", 0, true},
		{"Numeric id", "2", 2, true},
		{"Numeric id unknown to the list", "77", 77, true},
		{"Slug", "hogar-jardin", 2, true},
		{"Accented name", "ELECTRÓNICA", 1, true},
		{"Unresolvable slug", "juguetes", 0, false},
		{"Zero id", "0", 0, false},
		{"Negative id", "-3", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := catalog.ResolveCategory(tc.selector, categories)

			assert.Equal(t, tc.wantID, id)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("Search for Galaxy", func(t *testing.T) {
		// Arrange
		catalogue := []models.Product{
			product(1, "Galaxy S25", "", "1000", 1),
			product(2, "Smart TV", "", "500", 1),
		}

		// Act
		listing := catalog.Apply(catalogue, categories, models.ProductQuery{Search: "Galaxy"}, "es")

		// Assert
		require.Len(t, listing.Products, 1)
		assert.Equal(t, int64(1), listing.Products[0].ID)
		assert.Equal(t, 1, listing.Total)
	})

	t.Run("Search matches the description case-insensitively", func(t *testing.T) {
		listing := catalog.Apply(products, categories, models.ProductQuery{Search: "DECORACIÓN"}, "es")

		assert.ElementsMatch(t, []string{"Ñandú de cerámica", "árbol artificial"}, names(listing))
	})

	t.Run("Unresolvable slug yields an empty result", func(t *testing.T) {
		listing := catalog.Apply(products, categories, models.ProductQuery{Category: "juguetes"}, "es")

		assert.NotNil(t, listing.Products)
		assert.Empty(t, listing.Products)
		assert.Zero(t, listing.Total)
	})

	t.Run("Negative category id yields an empty result", func(t *testing.T) {
		listing := catalog.Apply(products, categories, models.ProductQuery{Category: "-3"}, "es")

		assert.Empty(t, listing.Products)
		assert.Zero(t, listing.Total)
	})

	t.Run("Category slug then search", func(t *testing.T) {
		listing := catalog.Apply(products, categories, models.ProductQuery{Category: "electronica", Search: "tv"}, "es")

		assert.Equal(t, []string{"Smart TV"}, names(listing))
		assert.Equal(t, int64(1), listing.CategoryID)
	})

	t.Run("Name sort uses Spanish collation", func(t *testing.T) {
		listing := catalog.Apply(products, categories, models.ProductQuery{Category: "2", SortBy: models.SortByName}, "es")

		// byte order would put the accented names after "Zapatero"
		assert.Equal(t, []string{"árbol artificial", "Ñandú de cerámica", "Zapatero"}, names(listing))
	})

	t.Run("Price ascending is stable", func(t *testing.T) {
		listing := catalog.Apply(products, categories, models.ProductQuery{SortBy: models.SortByPriceAsc}, "es")

		assert.Equal(t, []string{"Ñandú de cerámica", "Zapatero", "árbol artificial", "Smart TV", "Galaxy S25"}, names(listing))
	})

	t.Run("Price descending", func(t *testing.T) {
		listing := catalog.Apply(products, categories, models.ProductQuery{SortBy: models.SortByPriceDesc}, "es")

		assert.Equal(t, "Galaxy S25", listing.Products[0].Name)
		assert.Equal(t, "Smart TV", listing.Products[1].Name)
	})

	t.Run("Input is not modified", func(t *testing.T) {
		before := names(models.ProductListing{Products: products})

		catalog.Apply(products, categories, models.ProductQuery{SortBy: models.SortByPriceDesc}, "es")

		assert.Equal(t, before, names(models.ProductListing{Products: products}))
	})
}
