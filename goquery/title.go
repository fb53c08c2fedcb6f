package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/emontes/prodex"
)

// titleSelectors in priority order: semantic product-title markers first,
// the generic heading last as a catch-all before the attribute fallbacks.
var titleSelectors = []string{
	"h1.product-title",
	`h1[itemprop="name"]`,
	"h1.product-name",
	"h1",
	".product-title",
	"[data-product-title]",
}

// extractTitle returns the first non-empty trimmed text match, or the
// sentinel when the cascade is exhausted.
func extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if text := cleanText(sel); text != "" {
			return text
		}
	}
	return prodex.TitleNotFound
}
