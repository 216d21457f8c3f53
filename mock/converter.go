package mock

import "github.com/fwojciec/meetparse"

var _ meetparse.Converter = (*Converter)(nil)

// Converter is a mock implementation of meetparse.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
