package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/urlinfo"
	"github.com/google/uuid"
)

// DefaultHistoryLimit is the number of entries kept when no limit is given.
const DefaultHistoryLimit = 100

// Compile-time interface verification.
var _ urlinfo.HistoryService = (*HistoryService)(nil)

// HistoryService implements urlinfo.HistoryService using SQLite. It keeps
// at most limit entries, dropping the oldest on insert.
type HistoryService struct {
	db    *DB
	limit int
}

// NewHistoryService creates a new HistoryService keeping at most limit
// entries. A limit of zero or less means DefaultHistoryLimit.
func NewHistoryService(db *DB, limit int) *HistoryService {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryService{db: db, limit: limit}
}

// HashReport returns the xxHash of the report's rendered text as hex.
// Runs over an unchanged page produce the same hash.
func HashReport(report *urlinfo.Report) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(urlinfo.FormatReport(report)))
}

// CreateEntry records a run and prunes entries beyond the limit.
func (s *HistoryService) CreateEntry(ctx context.Context, entry *urlinfo.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC().Truncate(time.Second)

	var report string
	if entry.Report != nil {
		entry.ContentHash = HashReport(entry.Report)
		b, err := json.Marshal(entry.Report)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		report = string(b)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO history (id, source_url, report, content_hash, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.SourceURL, report, entry.ContentHash, entry.Error,
		entry.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM history
		WHERE seq NOT IN (SELECT seq FROM history ORDER BY seq DESC LIMIT ?)
	`, s.limit); err != nil {
		return err
	}

	return tx.Commit()
}

// FindEntryByID retrieves an entry by ID.
func (s *HistoryService) FindEntryByID(ctx context.Context, id string) (*urlinfo.HistoryEntry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, report, content_hash, error, created_at
		FROM history
		WHERE id = ?
	`, id)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, urlinfo.Errorf(urlinfo.ENOTFOUND, "history entry not found")
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// FindEntries retrieves entries matching the filter, newest first.
func (s *HistoryService) FindEntries(ctx context.Context, filter urlinfo.HistoryFilter) ([]*urlinfo.HistoryEntry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, report, content_hash, error, created_at FROM history WHERE 1=1")

	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY seq DESC")

	// SQLite rejects OFFSET without LIMIT; -1 means no limit.
	switch {
	case filter.Limit > 0:
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	case filter.Offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*urlinfo.HistoryEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (*urlinfo.HistoryEntry, error) {
	var entry urlinfo.HistoryEntry
	var report, createdAt string

	if err := sc.Scan(&entry.ID, &entry.SourceURL, &report, &entry.ContentHash, &entry.Error, &createdAt); err != nil {
		return nil, err
	}

	if report != "" {
		entry.Report = &urlinfo.Report{}
		if err := json.Unmarshal([]byte(report), entry.Report); err != nil {
			return nil, fmt.Errorf("failed to decode report: %w", err)
		}
	}

	var err error
	if entry.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &entry, nil
}
