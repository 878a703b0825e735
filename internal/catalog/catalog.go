// Package catalog filters and sorts a product snapshot. It does no I/O.
package catalog

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWord    = regexp.MustCompile(`[^a-z0-9_\s-]`)
	separators = regexp.MustCompile(`[\s_-]+`)
)

// Slugify lower-cases value, drops accents and punctuation and joins words with hyphens:
// "Electrónica & Hogar" becomes "electronica-hogar".
func Slugify(value string) string {
	s := norm.NFD.String(strings.ToLower(value))
	s = nonWord.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// ResolveCategory turns a numeric id or a name slug into a category id. ok is false when a slug
// matches no category or the id is not positive. An empty selector means no filter and returns 0, true.
func ResolveCategory(selector string, categories []models.Category) (int64, bool) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return 0, true
	}

	if id, err := strconv.ParseInt(selector, 10, 64); err == nil {
		if id <= 0 {
			return 0, false
		}

		return id, true
	}

	slug := Slugify(selector)
	for _, c := range categories {
		if Slugify(c.Name) == slug {
			return c.ID, true
		}
	}

	return 0, false
}

// Matches reports whether search is a case-insensitive substring of the name or description.
func Matches(p models.Product, search string) bool {
	if search == "" {
		return true
	}

	needle := strings.ToLower(search)

	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// Sort orders products in place. Unknown keys sort by name. Name comparison follows locale's
// collation rules.
func Sort(products []models.Product, sortBy, locale string) {
	switch sortBy {
	case models.SortByPriceAsc:
		slices.SortStableFunc(products, func(a, b models.Product) int { return a.Price.Cmp(b.Price) })
	case models.SortByPriceDesc:
		slices.SortStableFunc(products, func(a, b models.Product) int { return b.Price.Cmp(a.Price) })
	default:
		// collators keep internal buffers and are not safe for concurrent use
		col := collate.New(language.Make(locale))
		slices.SortStableFunc(products, func(a, b models.Product) int { return col.CompareString(a.Name, b.Name) })
	}
}

// Apply runs the listing pipeline: category, then search, then sort. The input slice is not
// modified.
func Apply(products []models.Product, categories []models.Category, query models.ProductQuery, locale string) models.ProductListing {

	categoryID, ok := ResolveCategory(query.Category, categories)
	if !ok {
		return models.ProductListing{Products: []models.Product{}}
	}

	out := make([]models.Product, 0, len(products))

	for _, p := range products {
		if categoryID > 0 && p.CategoryID != categoryID {
			continue
		}

		if !Matches(p, strings.TrimSpace(query.Search)) {
			continue
		}

		out = append(out, p)
	}

	Sort(out, query.SortBy, locale)

	return models.ProductListing{Products: out, Total: len(out), CategoryID: categoryID}
}
