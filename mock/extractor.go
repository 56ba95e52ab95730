package mock

import (
	"context"

	"github.com/fwojciec/vitae"
)

var _ vitae.ProfileExtractor = (*ProfileExtractor)(nil)

// ProfileExtractor is a mock implementation of vitae.ProfileExtractor.
type ProfileExtractor struct {
	ExtractFn func(ctx context.Context, html string, pageURL string) (*vitae.Profile, error)
}

func (e *ProfileExtractor) Extract(ctx context.Context, html string, pageURL string) (*vitae.Profile, error) {
	return e.ExtractFn(ctx, html, pageURL)
}
