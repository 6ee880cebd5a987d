package mock

import "github.com/fwojciec/htmlmd"

var _ htmlmd.Boundary = (*Boundary)(nil)

// Boundary is a mock implementation of htmlmd.Boundary.
type Boundary struct {
	ConvertFn func(html string) (*htmlmd.Buffer, error)
}

func (b *Boundary) Convert(html string) (*htmlmd.Buffer, error) {
	return b.ConvertFn(html)
}
