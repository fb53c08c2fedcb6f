package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/emontes/prodex"
)

// Identity attribute selector cascades. Each is probed independently;
// there is no cross-field fallback.
var (
	skuSelectors = []string{
		`[itemprop="sku"]`,
		".product-sku",
		"[data-sku]",
	}
	categorySelectors = []string{
		`[itemprop="category"]`,
		".product-category",
		".breadcrumb a",
	}
	availabilitySelectors = []string{
		`[itemprop="availability"]`,
		".product-availability",
		".stock-status",
	}
)

// extractAttributes probes SKU, categories, and availability, then nests
// the specification mapping under the attributes when non-empty.
func extractAttributes(doc *goquery.Document) prodex.Attributes {
	attrs := prodex.Attributes{
		SKU:          firstMatchText(doc, skuSelectors),
		Categories:   allMatchTexts(doc, categorySelectors),
		Availability: firstMatchText(doc, availabilitySelectors),
	}

	if specs := extractSpecs(doc); len(specs) > 0 {
		attrs.Specs = specs
	}
	return attrs
}

// firstMatchText returns the text of the first selector that matches any
// element. The cascade stops at the first match even when its text is
// empty.
func firstMatchText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 {
			return cleanText(sel)
		}
	}
	return ""
}

// allMatchTexts returns the texts of every element matched by the first
// selector yielding at least one non-empty text.
func allMatchTexts(doc *goquery.Document, selectors []string) []string {
	for _, selector := range selectors {
		var texts []string
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if text := cleanText(sel); text != "" {
				texts = append(texts, text)
			}
		})
		if len(texts) > 0 {
			return texts
		}
	}
	return nil
}
