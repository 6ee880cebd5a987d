package htmltomarkdown

import (
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/htmlmd"
)

// Ensure Converter implements htmlmd.Boundary at compile time.
var _ htmlmd.Boundary = (*Converter)(nil)

// Converter wraps html-to-markdown to implement the conversion boundary.
// A Converter is safe for concurrent use.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into a Markdown result buffer. Empty
// input yields an empty buffer, never an error.
func (c *Converter) Convert(html string) (*htmlmd.Buffer, error) {
	if html == "" {
		return htmlmd.NewBuffer(nil, nil), nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return nil, err
	}

	return htmlmd.NewBuffer([]byte(result), nil), nil
}
