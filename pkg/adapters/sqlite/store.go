// Package sqlite provides a SQLite-backed adventure store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/quest/pkg/codec"
	"github.com/aretw0/quest/pkg/domain"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS adventures (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	record     TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Store persists adventures in SQLite, one JSON record per row.
type Store struct {
	sqlDB  *sql.DB
	logger *slog.Logger
}

// Option configures the Store.
type Option func(*Store)

// WithLogger sets the logger used to report skipped rows.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Open opens a SQLite adventure store and creates its table if needed.
func Open(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{
		sqlDB:  sqlDB,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// LoadAll decodes every row ordered by ID. Rows that fail to decode are logged and skipped.
func (s *Store) LoadAll(ctx context.Context) ([]*domain.Adventure, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, record FROM adventures ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list adventures: %w", err)
	}
	defer rows.Close()

	all := []*domain.Adventure{}
	for rows.Next() {
		var id, record string
		if err := rows.Scan(&id, &record); err != nil {
			return nil, fmt.Errorf("scan adventure: %w", err)
		}
		adv, err := codec.DecodeJSON([]byte(record))
		if err != nil {
			s.logger.Warn("skipping unreadable adventure", "id", id, "err", err)
			continue
		}
		all = append(all, adv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate adventures: %w", err)
	}
	return all, nil
}

// Load retrieves one adventure.
func (s *Store) Load(ctx context.Context, id string) (*domain.Adventure, error) {
	var record string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT record FROM adventures WHERE id = ?`, id).Scan(&record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdventureNotFound
		}
		return nil, fmt.Errorf("get adventure: %w", err)
	}

	adv, err := codec.DecodeJSON([]byte(record))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAdventureNotFound, err)
	}
	return adv, nil
}

// Save upserts the adventure row.
func (s *Store) Save(ctx context.Context, adv *domain.Adventure) error {
	if adv == nil || adv.ID == "" {
		return fmt.Errorf("adventure id cannot be empty")
	}
	data, err := codec.EncodeJSON(adv)
	if err != nil {
		return fmt.Errorf("failed to encode adventure: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO adventures (id, title, record, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   record = excluded.record,
		   updated_at = excluded.updated_at`,
		adv.ID, adv.Title, string(data), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save adventure: %w", err)
	}
	return nil
}

// Delete removes the adventure row.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM adventures WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete adventure: %w", err)
	}
	return nil
}
