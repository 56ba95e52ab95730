package render

import "github.com/fwojciec/vitae"

// Ensure MarkdownRenderer implements vitae.Renderer at compile time.
var _ vitae.Renderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer renders a profile as Markdown by converting the printable
// HTML document, so both formats always carry the same content.
type MarkdownRenderer struct {
	html *HTMLRenderer
	conv vitae.Converter
}

// NewMarkdownRenderer creates a MarkdownRenderer on top of the given
// HTML-to-Markdown converter.
func NewMarkdownRenderer(conv vitae.Converter) *MarkdownRenderer {
	return &MarkdownRenderer{html: NewHTMLRenderer(), conv: conv}
}

// Ext returns "md".
func (r *MarkdownRenderer) Ext() string { return "md" }

// Render produces the Markdown document.
func (r *MarkdownRenderer) Render(profile *vitae.Profile, settings vitae.Settings) ([]byte, error) {
	html, err := r.html.Render(profile, settings)
	if err != nil {
		return nil, err
	}
	md, err := r.conv.Convert(string(html))
	if err != nil {
		return nil, err
	}
	return []byte(md), nil
}
