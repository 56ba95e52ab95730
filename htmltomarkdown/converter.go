// Package htmltomarkdown converts rendered profile documents to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/vitae"
)

var _ vitae.Converter = (*Converter)(nil)

// Converter turns the HTML renderer's output into portable Markdown. Profile
// documents are structurally simple (headings, meta paragraphs, bullet
// lists, links), all of which the commonmark plugin covers.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a Converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert transforms HTML content into Markdown. Blank input is rejected
// with EINVALID rather than converted into an empty document.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", vitae.Errorf(vitae.EINVALID, "no HTML to convert")
	}
	return c.conv.ConvertString(html)
}
