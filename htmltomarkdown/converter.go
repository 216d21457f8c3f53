// Package htmltomarkdown renders meeting details as Markdown for export.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/meetparse"
)

// Ensure Converter implements meetparse.Converter at compile time.
var _ meetparse.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert meeting details.
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

// Convert transforms a details fragment into Markdown. Meetings without
// details convert to an empty string.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", meetparse.Errorf(meetparse.EINVALID, "cannot convert details: %v", err)
	}
	return strings.TrimSpace(md), nil
}
