package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/vitae"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ vitae.RecordService = (*RecordService)(nil)

// RecordService implements vitae.RecordService using SQLite. The profile
// payload is stored as a JSON document and round-trips byte-for-byte
// semantically: the service never touches its fields.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content []byte) string {
	h := xxhash.Sum64(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateRecord stores a new extraction result under a fresh key.
func (s *RecordService) CreateRecord(ctx context.Context, rec *vitae.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(rec.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()
	rec.ContentHash = hashContent(payload)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, source_url, profile, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, rec.ID, rec.SourceURL, string(payload), rec.ContentHash,
		rec.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*vitae.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, profile, content_hash, created_at
		FROM records
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, vitae.Errorf(vitae.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter vitae.RecordFilter) ([]*vitae.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, profile, content_hash, created_at FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		// SQLite only accepts OFFSET after a LIMIT; -1 means unlimited.
		if filter.Limit <= 0 {
			query.WriteString(" LIMIT -1")
		}
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*vitae.Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return vitae.Errorf(vitae.ENOTFOUND, "record not found")
	}

	return nil
}

// scanRecord reads one row into a Record, decoding the profile payload and
// the created-at timestamp.
func scanRecord(scan func(dest ...any) error) (*vitae.Record, error) {
	var rec vitae.Record
	var payload, createdAt string

	if err := scan(&rec.ID, &rec.SourceURL, &payload, &rec.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	rec.Profile = &vitae.Profile{}
	if err := json.Unmarshal([]byte(payload), rec.Profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	var err error
	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &rec, nil
}
