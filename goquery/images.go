package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxImages caps the image sequence length.
const maxImages = 10

// imageSelectors in priority order: product gallery and carousel
// containers, then itemprop-marked images.
var imageSelectors = []string{
	".product-image img",
	".product-gallery img",
	".product-images img",
	"[data-product-image]",
	".carousel img",
	`img[itemprop="image"]`,
}

// imageSrcAttrs are checked per element in order; the first non-empty
// attribute wins. The data- variants cover lazy-loaded galleries.
var imageSrcAttrs = []string{"src", "data-src", "data-lazy-src"}

// imageKeywords mark sources that look like product assets, used by the
// whole-page fallback scan. "/p/" covers the short product-path
// convention of several storefront platforms.
var imageKeywords = []string{"product", "item", "image", "img", "photo", "foto", "/p/"}

// extractImages collects product image URLs resolved against the page
// origin, de-duplicated in first-seen order and capped at maxImages.
// Selectors are tried until the first one yields at least one image; that
// selector's full set is used and the rest of the list is skipped. When
// the whole list yields nothing, every image on the page whose source
// contains a product-asset keyword is kept instead.
func extractImages(doc *goquery.Document, origin *url.URL) []string {
	images := []string{}
	seen := make(map[string]bool)

	add := func(src string) {
		resolved := resolveSource(origin, src)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		images = append(images, resolved)
	}

	for _, selector := range imageSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if src := elementSource(sel, imageSrcAttrs); src != "" {
				add(src)
			}
		})
		if len(images) > 0 {
			break
		}
	}

	if len(images) == 0 {
		doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
			src := elementSource(sel, imageSrcAttrs[:2])
			if src == "" || !containsAny(src, imageKeywords) {
				return
			}
			add(src)
		})
	}

	if len(images) > maxImages {
		images = images[:maxImages]
	}
	return images
}

// elementSource returns the first non-empty source attribute of an image
// element.
func elementSource(sel *goquery.Selection, attrs []string) string {
	for _, attr := range attrs {
		if v, ok := sel.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// resolveSource absolutizes an image source against the page origin.
// Already-absolute sources are returned unchanged; unparseable ones are
// dropped.
func resolveSource(origin *url.URL, src string) string {
	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return src
	}
	return origin.ResolveReference(ref).String()
}
