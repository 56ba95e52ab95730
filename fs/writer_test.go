package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeForTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name untouched", "Jane Doe", "Jane Doe"},
		{"path separators stripped", `Jane/Doe\CTO`, "Jane Doe CTO"},
		{"reserved characters stripped", `Jane <"Doe"> * ?`, "Jane Doe"},
		{"whitespace collapsed", "Jane   Doe", "Jane Doe"},
		{"empty stays empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.SanitizeForTitle(tt.in))
		})
	}
}

func TestExportFileName(t *testing.T) {
	t.Parallel()

	t.Run("uses name and slug", func(t *testing.T) {
		t.Parallel()

		p := &vitae.Profile{Name: "Jane Doe", Slug: "jane-doe"}
		assert.Equal(t, "Jane Doe _in_jane-doe.pdf", fs.ExportFileName(p, "pdf"))
	})

	t.Run("omits the slug marker when unknown", func(t *testing.T) {
		t.Parallel()

		p := &vitae.Profile{Name: "Jane Doe"}
		assert.Equal(t, "Jane Doe.md", fs.ExportFileName(p, "md"))
	})

	t.Run("falls back to the placeholder name", func(t *testing.T) {
		t.Parallel()

		p := &vitae.Profile{Name: `???`}
		assert.Equal(t, vitae.PlaceholderName+".json", fs.ExportFileName(p, "json"))
	})
}

func TestWriter_WriteExport(t *testing.T) {
	t.Parallel()

	t.Run("writes the document and returns the path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		p := &vitae.Profile{Name: "Jane Doe", Slug: "jane-doe"}

		path, err := w.WriteExport(p, []byte("# Jane Doe"), "md")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "Jane Doe _in_jane-doe.md"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Jane Doe", string(data))
	})

	t.Run("creates the base directory if missing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "exports")
		w := fs.NewWriter(dir)

		_, err := w.WriteExport(&vitae.Profile{Name: "Jane Doe"}, []byte("{}"), "json")
		require.NoError(t, err)
	})

	t.Run("rejects a nil profile", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		_, err := w.WriteExport(nil, nil, "json")
		assert.Equal(t, vitae.EINVALID, vitae.ErrorCode(err))
	})
}
