package mock

import "github.com/emontes/prodex"

var _ prodex.Converter = (*Converter)(nil)

// Converter is a mock implementation of prodex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
