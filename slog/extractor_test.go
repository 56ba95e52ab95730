package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/fwojciec/vitae/mock"
	vitaeslog "github.com/fwojciec/vitae/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs the extracted name and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ProfileExtractor{
			ExtractFn: func(ctx context.Context, html string, pageURL string) (*vitae.Profile, error) {
				return &vitae.Profile{Name: "Jane Doe"}, nil
			},
		}

		extractor := vitaeslog.NewLoggingExtractor(inner, logger)
		profile, err := extractor.Extract(context.Background(), "<html></html>", "https://example.com/in/jane")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", profile.Name)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "url=https://example.com/in/jane")
		assert.Contains(t, output, `name="Jane Doe"`)
		assert.Contains(t, output, "placeholder=false")
		assert.Contains(t, output, "duration=")
	})

	t.Run("flags placeholder records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ProfileExtractor{
			ExtractFn: func(ctx context.Context, html string, pageURL string) (*vitae.Profile, error) {
				return &vitae.Profile{Name: vitae.PlaceholderName}, nil
			},
		}

		extractor := vitaeslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract(context.Background(), "", "")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "placeholder=true")
	})
}
