package mock

import "github.com/emontes/prodex"

var _ prodex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of prodex.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*prodex.Record, error)
}

func (e *Extractor) Extract(html, pageURL string) (*prodex.Record, error) {
	return e.ExtractFn(html, pageURL)
}
