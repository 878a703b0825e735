package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all markup from shopper-entered text before it reaches the backend.
var strictPolicy = bluemonday.StrictPolicy()

// clean removes markup and trims. bluemonday escapes what it keeps, so entities are decoded
// again to store "Peña & Hijos" rather than "Peña &amp; Hijos".
func clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

func cleanAll(fields ...*string) {
	for _, f := range fields {
		*f = clean(*f)
	}
}
