package prodex

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input is typically the description container captured by an
	// Extractor (Record.DescriptionHTML).
	Convert(html string) (string, error)
}
