package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/vitae"
)

// Ensure LoggingRecordService implements vitae.RecordService.
var _ vitae.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging.
type LoggingRecordService struct {
	next   vitae.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next vitae.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecord logs the stored record's key and delegates.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, rec *vitae.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create record",
			"id", rec.ID,
			"source_url", rec.SourceURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, rec)
}

// FindRecordByID delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (*vitae.Record, error) {
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords logs the result count and delegates.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter vitae.RecordFilter) (records []*vitae.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecord logs the deletion and delegates.
func (s *LoggingRecordService) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, id)
}
