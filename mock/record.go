package mock

import (
	"context"

	"github.com/fwojciec/vitae"
)

var _ vitae.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of vitae.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *vitae.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*vitae.Record, error)
	FindRecordsFn    func(ctx context.Context, filter vitae.RecordFilter) ([]*vitae.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *vitae.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*vitae.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter vitae.RecordFilter) ([]*vitae.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
