package vitae

// Renderer turns a Profile into a rendered document in one output format.
type Renderer interface {
	// Render produces the document bytes for the profile, honoring the
	// section toggles in settings.
	Render(profile *Profile, settings Settings) ([]byte, error)

	// Ext returns the file extension for the rendered format, without the
	// leading dot (e.g. "pdf", "md").
	Ext() string
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// ExportWriter writes rendered documents to storage.
type ExportWriter interface {
	// WriteExport persists the rendered document under a name derived from
	// the profile and returns the path written.
	WriteExport(profile *Profile, data []byte, ext string) (string, error)
}
