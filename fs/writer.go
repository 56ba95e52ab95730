// Package fs provides file-based output for rendered profile exports.
package fs

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/vitae"
)

var unsafeTitleRe = regexp.MustCompile(`[<>:"/\\|?*]+`)

// SanitizeForTitle strips filesystem-hostile characters from a name and
// collapses the resulting whitespace.
func SanitizeForTitle(s string) string {
	s = unsafeTitleRe.ReplaceAllString(s, " ")
	return vitae.NormalizeWhitespace(s)
}

// ExportFileName derives the export file name from the profile: the
// sanitized name, plus the slug when known, plus the format extension.
// Example: "Jane Doe _in_jane-doe.pdf".
func ExportFileName(profile *vitae.Profile, ext string) string {
	name := SanitizeForTitle(profile.Name)
	if name == "" {
		name = vitae.PlaceholderName
	}
	if slug := SanitizeForTitle(profile.Slug); slug != "" {
		name += " _in_" + slug
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}

// Ensure Writer implements vitae.ExportWriter at compile time.
var _ vitae.ExportWriter = (*Writer)(nil)

// Writer writes rendered exports to a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteExport persists the rendered document and returns the path written.
func (w *Writer) WriteExport(profile *vitae.Profile, data []byte, ext string) (string, error) {
	if profile == nil {
		return "", vitae.Errorf(vitae.EINVALID, "profile required")
	}

	fullPath := filepath.Join(w.baseDir, ExportFileName(profile, ext))

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
