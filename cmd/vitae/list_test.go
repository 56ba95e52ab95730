package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/vitae"
	main "github.com/fwojciec/vitae/cmd/vitae"
	"github.com/fwojciec/vitae/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists records with ID, name, and URL", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ vitae.RecordFilter) ([]*vitae.Record, error) {
				return []*vitae.Record{
					{
						ID:        "rec-123",
						SourceURL: "https://example.com/in/jane-doe",
						Profile:   &vitae.Profile{Name: "Jane Doe"},
						CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:        "rec-456",
						SourceURL: "https://example.com/in/john-smith",
						Profile:   &vitae.Profile{Name: "John Smith"},
						CreatedAt: time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Records: records,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "rec-123")
		assert.Contains(t, output, "rec-456")
		assert.Contains(t, output, "Jane Doe")
		assert.Contains(t, output, "John Smith")
		assert.Contains(t, output, "https://example.com/in/jane-doe")
		assert.Contains(t, output, "2025-01-15")
	})

	t.Run("passes the URL filter and limit through", func(t *testing.T) {
		t.Parallel()

		var gotFilter vitae.RecordFilter
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter vitae.RecordFilter) ([]*vitae.Record, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Records: records,
		}

		cmd := &main.ListCmd{URL: "https://example.com/in/jane-doe", Limit: 5}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.SourceURL)
		assert.Equal(t, "https://example.com/in/jane-doe", *gotFilter.SourceURL)
		assert.Equal(t, 5, gotFilter.Limit)
	})

	t.Run("shows helpful message when no records exist", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ vitae.RecordFilter) ([]*vitae.Record, error) {
				return []*vitae.Record{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Records: records,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No records")
	})

	t.Run("returns error when FindRecords fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ vitae.RecordFilter) ([]*vitae.Record, error) {
				return nil, dbErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Records: records,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
