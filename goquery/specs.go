package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/emontes/prodex"
)

// specKeywords label the specification sections the keyword cascade
// looks for in heading-like and inline-emphasis elements.
var specKeywords = []string{
	"especificaciones",
	"especificación",
	"características",
	"detalles",
	"modo de uso",
}

// specHeadingTags are the elements whose text is matched against
// specKeywords.
const specHeadingTags = "h2, h3, h4, strong, b, span"

// specListKeywords mark bullet lists that look like specifications even
// without a labeled heading.
var specListKeywords = []string{"material", "batería", "compatibilidad", "uso", "instalación"}

// specGenericKey is the attribute key used by the generic list scan.
const specGenericKey = "Especificaciones"

// specMaxSiblings caps how many following siblings of a matched heading
// are inspected for specification text.
const specMaxSiblings = 5

// specMinText filters sibling paragraphs too short to be specification
// content.
const specMinText = 20

// extractSpecs collects specification sections keyed by their capitalized
// keyword. A matched heading whose enclosing container holds a bullet
// list records the list items as an ordered sequence; otherwise up to
// specMaxSiblings following paragraph/div siblings are joined as text.
// Independently, any list of two or more items mentioning a
// specification-like keyword registers under the generic key, but never
// overwrites a key the keyword cascade already set.
func extractSpecs(doc *goquery.Document) prodex.Specs {
	specs := prodex.Specs{}

	for _, keyword := range specKeywords {
		key := capitalize(keyword)
		doc.Find(specHeadingTags).Each(func(_ int, sel *goquery.Selection) {
			if !strings.Contains(strings.ToLower(cleanText(sel)), keyword) {
				return
			}
			parent := sel.Parent()
			if parent.Length() == 0 {
				return
			}

			if items := containerListItems(parent); len(items) > 0 {
				specs[key] = prodex.SpecList(items...)
				return
			}

			if text := siblingSpecText(sel); text != "" {
				specs[key] = prodex.SpecText(text)
			}
		})
	}

	doc.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		items := listItems(list)
		if len(items) < 2 {
			return
		}
		if !containsAny(strings.Join(items, " "), specListKeywords) {
			return
		}
		if _, ok := specs[specGenericKey]; !ok {
			specs[specGenericKey] = prodex.SpecList(items...)
		}
	})

	return specs
}

// containerListItems returns the item texts of the last list inside the
// container, mirroring how repeated keyword matches resolve.
func containerListItems(container *goquery.Selection) []string {
	var items []string
	container.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		if found := listItems(list); len(found) > 0 {
			items = found
		}
	})
	return items
}

// listItems returns the non-empty item texts of a list element.
func listItems(list *goquery.Selection) []string {
	var items []string
	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		if text := cleanText(li); text != "" {
			items = append(items, text)
		}
	})
	return items
}

// siblingSpecText joins the text of up to specMaxSiblings paragraph/div
// siblings following a matched heading.
func siblingSpecText(sel *goquery.Selection) string {
	var parts []string
	sel.NextAllFiltered("p, div").EachWithBreak(func(i int, sib *goquery.Selection) bool {
		if i >= specMaxSiblings {
			return false
		}
		if text := cleanText(sib); runeLen(text) > specMinText {
			parts = append(parts, text)
		}
		return true
	})
	return strings.Join(parts, "\n")
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
