// Package goquery implements the heuristic product extraction engine.
//
// Each record field is resolved by its own cascade of CSS selector
// strategies tried in priority order with first-match-wins semantics.
// Field misses never fail an extraction: title and description degrade
// to sentinels, price to nil, images and attributes to empty. The only
// error surfaced is markup that cannot be parsed into a document.
package goquery

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/emontes/prodex"
)

// Ensure Extractor implements prodex.Extractor at compile time.
var _ prodex.Extractor = (*Extractor)(nil)

// Extractor extracts product records from e-commerce page markup.
// The zero value is not usable; use NewExtractor.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the markup and assembles a Record. See prodex.Extractor.
func (e *Extractor) Extract(html, pageURL string) (*prodex.Record, error) {
	origin, err := pageOrigin(pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, prodex.Errorf(prodex.EINVALID, "failed to parse HTML: %v", err)
	}

	description, descriptionHTML := extractDescription(doc)

	rec := &prodex.Record{
		URL:             pageURL,
		Title:           extractTitle(doc),
		Price:           extractPrice(doc),
		Description:     description,
		DescriptionHTML: descriptionHTML,
		Images:          extractImages(doc, origin),
		Attributes:      extractAttributes(doc),
		ExtractedAt:     time.Now().Format(prodex.TimestampLayout),
	}
	return rec, nil
}

// pageOrigin reduces the page URL to its scheme+host origin, the base all
// relative image sources resolve against.
func pageOrigin(pageURL string) (*url.URL, error) {
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, prodex.Errorf(prodex.EINVALID, "invalid page URL: %q", pageURL)
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host}, nil
}
