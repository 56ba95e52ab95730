package vitae

import (
	"context"
	"time"
)

// Record is a stored extraction result. The profile payload is kept as the
// exact record returned by the extractor; the store never modifies it.
type Record struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Profile     *Profile  `json:"profile"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Profile == nil {
		return Errorf(EINVALID, "record profile required")
	}
	return r.Profile.Validate()
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordService manages stored extraction results.
type RecordService interface {
	// CreateRecord stores a new extraction result under a fresh key.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}
