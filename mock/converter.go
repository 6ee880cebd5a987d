package mock

import "github.com/fwojciec/htmlmd"

var _ htmlmd.Converter = (*Converter)(nil)

// Converter is a mock implementation of htmlmd.Converter.
type Converter struct {
	ConvertSyncFn func(html string) (string, error)
	ConvertFn     func(html string, cb htmlmd.Callback) error
}

func (c *Converter) ConvertSync(html string) (string, error) {
	return c.ConvertSyncFn(html)
}

func (c *Converter) Convert(html string, cb htmlmd.Callback) error {
	return c.ConvertFn(html, cb)
}
