package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/emontes/prodex"
)

// Description cascade thresholds, in characters.
const (
	// descMinSignificant is the bar a selector match must clear to count
	// as a real description rather than a stray label.
	descMinSignificant = 20
	// descMinParagraph filters paragraphs and class-matched containers.
	descMinParagraph = 50
	// descMinLine filters inner paragraphs and heading-adjacent lines.
	descMinLine = 30
	// descMaxHeadingLines caps the last-resort heading-parent scan.
	descMaxHeadingLines = 5
)

// descriptionSelectors in priority order: semantic markers, then
// platform-specific (Odoo storefront) classes, then generic ones.
var descriptionSelectors = []string{
	".product-description",
	`[itemprop="description"]`,
	".product-details",
	".product-info",
	"#product-description",
	".o_product_description",
	".oe_product_description",
	`div[itemprop="description"]`,
	".product_detail_description",
	".product-description-full",
	".description",
	"#description",
	"div.description",
	"p.description",
}

// descBlocklist marks boilerplate paragraphs (legal, cookie and privacy
// text) that must never be picked up as a product description.
var descBlocklist = []string{"cookie", "privacy", "términos", "copyright"}

// descClassMarkers match containers whose class names suggest
// descriptive content.
var descClassMarkers = []string{"description", "detail", "info"}

// extractDescription runs the description cascade and returns the text
// plus, when a concrete container was matched, that container's HTML for
// downstream markdown conversion. Steps run strictly in order; the first
// one producing significant text short-circuits the rest. Returns the
// sentinel (and no HTML) only if every step fails.
func extractDescription(doc *goquery.Document) (string, string) {
	if text, html := descFromSelectors(doc); text != "" {
		return text, html
	}
	if text, html := descFromParagraphs(doc); text != "" {
		return text, html
	}
	if text, html := descFromClassedDivs(doc); text != "" {
		return text, html
	}
	if text, html := descFromProductSections(doc); text != "" {
		return text, html
	}
	if text := descFromMeta(doc); text != "" {
		return text, ""
	}
	if text := descNearHeading(doc); text != "" {
		return text, ""
	}
	return prodex.DescriptionNotFound, ""
}

// descFromSelectors tries the prioritized selector list, accepting the
// first match whose text clears the significance threshold.
func descFromSelectors(doc *goquery.Document) (string, string) {
	for _, selector := range descriptionSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := blockText(sel)
		if runeLen(text) > descMinSignificant {
			html, _ := sel.Html()
			return text, strings.TrimSpace(html)
		}
	}
	return "", ""
}

// descFromParagraphs keeps every paragraph on the page that is long
// enough and free of boilerplate keywords, joined by blank lines.
func descFromParagraphs(doc *goquery.Document) (string, string) {
	var parts, htmlParts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := cleanText(sel)
		if runeLen(text) <= descMinParagraph || containsAny(text, descBlocklist) {
			return
		}
		parts = append(parts, text)
		if h, err := goquery.OuterHtml(sel); err == nil {
			htmlParts = append(htmlParts, strings.TrimSpace(h))
		}
	})
	if len(parts) == 0 {
		return "", ""
	}
	return strings.Join(parts, "\n\n"), strings.Join(htmlParts, "\n")
}

// descFromClassedDivs returns the first sufficiently long div whose class
// attribute textually contains a descriptive marker.
func descFromClassedDivs(doc *goquery.Document) (string, string) {
	var text, html string
	doc.Find("div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, ok := sel.Attr("class")
		if !ok || !containsAny(class, descClassMarkers) {
			return true
		}
		t := blockText(sel)
		if runeLen(t) <= descMinParagraph {
			return true
		}
		text = t
		if h, err := sel.Html(); err == nil {
			html = strings.TrimSpace(h)
		}
		return false
	})
	return text, html
}

// descFromProductSections scans section/article/div containers whose
// class mentions "product" and returns the first non-empty collection of
// inner paragraphs.
func descFromProductSections(doc *goquery.Document) (string, string) {
	var text, html string
	for _, tag := range []string{"section", "article", "div"} {
		doc.Find(tag).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			class, ok := sel.Attr("class")
			if !ok || !strings.Contains(strings.ToLower(class), "product") {
				return true
			}
			var parts, htmlParts []string
			sel.Find("p").Each(func(_ int, p *goquery.Selection) {
				t := cleanText(p)
				if runeLen(t) <= descMinLine {
					return
				}
				parts = append(parts, t)
				if h, err := goquery.OuterHtml(p); err == nil {
					htmlParts = append(htmlParts, strings.TrimSpace(h))
				}
			})
			if len(parts) == 0 {
				return true
			}
			text = strings.Join(parts, "\n\n")
			html = strings.Join(htmlParts, "\n")
			return false
		})
		if text != "" {
			return text, html
		}
	}
	return "", ""
}

// descFromMeta falls back to the page-level meta description.
func descFromMeta(doc *goquery.Document) string {
	content, ok := doc.Find(`meta[name="description"]`).First().Attr("content")
	if !ok {
		return ""
	}
	content = strings.TrimSpace(content)
	if runeLen(content) > descMinSignificant {
		return content
	}
	return ""
}

// descNearHeading is the last resort: take the first top-level heading's
// parent, split its full text into lines, and keep the long lines that
// follow the heading's own line, capped at descMaxHeadingLines.
func descNearHeading(doc *goquery.Document) string {
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return ""
	}
	parent := h1.Parent()
	if parent.Length() == 0 {
		return ""
	}

	headingText := cleanText(h1)
	var lines []string
	found := false
	for _, line := range strings.Split(blockText(parent), "\n") {
		line = strings.TrimSpace(line)
		if found && runeLen(line) > descMinLine {
			lines = append(lines, line)
		}
		if headingText != "" && strings.Contains(line, headingText) {
			found = true
		}
	}
	if len(lines) == 0 {
		return ""
	}
	if len(lines) > descMaxHeadingLines {
		lines = lines[:descMaxHeadingLines]
	}
	return strings.Join(lines, "\n\n")
}
