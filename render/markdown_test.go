package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/mock"
	"github.com/fwojciec/vitae/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("feeds the printable HTML through the converter", func(t *testing.T) {
		t.Parallel()

		var got string
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				got = html
				return "# Jane Doe", nil
			},
		}

		out, err := render.NewMarkdownRenderer(conv).Render(sampleProfile(), vitae.DefaultSettings())
		require.NoError(t, err)
		assert.Equal(t, "# Jane Doe", string(out))
		assert.True(t, strings.Contains(got, "<h2>Experience</h2>"), "converter should receive the rendered HTML")
	})

	t.Run("propagates converter errors", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("conversion failed")
			},
		}

		_, err := render.NewMarkdownRenderer(conv).Render(sampleProfile(), vitae.DefaultSettings())
		require.Error(t, err)
	})

	t.Run("reports the md extension", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "md", render.NewMarkdownRenderer(&mock.Converter{}).Ext())
	})
}

func TestJSONRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("emits the raw record regardless of settings", func(t *testing.T) {
		t.Parallel()

		settings := vitae.DefaultSettings()
		settings.Experience = false

		out, err := render.NewJSONRenderer().Render(sampleProfile(), settings)
		require.NoError(t, err)
		assert.Contains(t, string(out), `"experiences"`)
		assert.Contains(t, string(out), `"name": "Jane Doe"`)
	})

	t.Run("reports the json extension", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "json", render.NewJSONRenderer().Ext())
	})
}
