package mock

import "github.com/fwojciec/vitae"

var _ vitae.ExportWriter = (*ExportWriter)(nil)

// ExportWriter is a mock implementation of vitae.ExportWriter.
type ExportWriter struct {
	WriteExportFn func(profile *vitae.Profile, data []byte, ext string) (string, error)
}

func (w *ExportWriter) WriteExport(profile *vitae.Profile, data []byte, ext string) (string, error) {
	return w.WriteExportFn(profile, data, ext)
}
