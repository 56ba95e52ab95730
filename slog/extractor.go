// Package slog provides logging decorators for vitae services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/vitae"
)

// Ensure LoggingExtractor implements vitae.ProfileExtractor.
var _ vitae.ProfileExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ProfileExtractor with debug logging.
type LoggingExtractor struct {
	next   vitae.ProfileExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next vitae.ProfileExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the extraction outcome and delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(ctx context.Context, html string, pageURL string) (profile *vitae.Profile, err error) {
	defer func(begin time.Time) {
		name := ""
		if profile != nil {
			name = profile.Name
		}
		e.logger.Info("extract",
			"url", pageURL,
			"bytes", len(html),
			"name", name,
			"placeholder", name == vitae.PlaceholderName,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, html, pageURL)
}
