package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// priceSelectors in priority order: semantic price markers, then
// class-based markers.
var priceSelectors = []string{
	".product-price",
	`[itemprop="price"]`,
	".price",
	".product-price-value",
	"[data-price]",
}

// extractPrice returns the raw matched text of the first selector whose
// text survives the validity check, or nil when no selector yields a
// validated result. A matched element with invalid text does not
// terminate the cascade; the next selector is tried.
func extractPrice(doc *goquery.Document) *string {
	for _, selector := range priceSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := cleanText(sel)
		if priceLike(text) {
			return &text
		}
	}
	return nil
}

// priceLike strips every rune that is not a digit, period, comma, or a
// recognized currency symbol and reports whether anything remains. The
// original text is what gets stored; this only validates it.
func priceLike(text string) bool {
	stripped := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == '.' || r == ',' || r == '€' || r == '$':
			return r
		}
		return -1
	}, text)
	return stripped != ""
}
