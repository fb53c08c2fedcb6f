package prodex

// Extractor turns raw product-page markup into a Record.
type Extractor interface {
	// Extract parses the markup and runs every field cascade, returning
	// an assembled Record. A field the page does not expose is not an
	// error: title and description degrade to their sentinels, price to
	// nil, images and attributes to empty. The only error conditions are
	// a pageURL without a scheme and host or markup that cannot be parsed
	// into a document at all, both reported as EINVALID with no partial
	// record.
	//
	// pageURL is used to resolve relative image sources against the
	// page's origin and is stored on the record as given.
	Extract(html, pageURL string) (*Record, error)
}
