package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/quest/pkg/codec"
	"github.com/aretw0/quest/pkg/domain"
)

const ext = ".json"

// Store implements ports.AdventureStore using the local filesystem.
// Each adventure lives in its own "<id>.json" file inside BasePath.
type Store struct {
	BasePath string
	logger   *slog.Logger
}

// Option configures the Store.
type Option func(*Store)

// WithLogger sets the logger used to report skipped files.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".quest/adventures".
func New(basePath string, opts ...Option) *Store {
	if basePath == "" {
		basePath = filepath.Join(".quest", "adventures")
	}
	s := &Store{
		BasePath: basePath,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) path(id string) string {
	return filepath.Join(s.BasePath, id+ext)
}

func validID(id string) error {
	if id == "" {
		return fmt.Errorf("adventure id cannot be empty")
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("invalid adventure id %q", id)
	}
	return nil
}

// LoadAll decodes every "<id>.json" file in BasePath, ordered by ID.
// Files that fail to decode are logged and skipped.
func (s *Store) LoadAll(ctx context.Context) ([]*domain.Adventure, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Adventure{}, nil
		}
		return nil, fmt.Errorf("failed to list adventures: %w", err)
	}

	all := make([]*domain.Adventure, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ext || strings.HasPrefix(name, "tmp-") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id := strings.TrimSuffix(name, ext)
		adv, err := s.Load(ctx, id)
		if err != nil {
			s.logger.Warn("skipping unreadable adventure", "file", name, "err", err)
			continue
		}
		all = append(all, adv)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

// Load reads and decodes one adventure file.
// A file that exists but cannot be decoded is reported as not found, wrapping the decode error.
func (s *Store) Load(ctx context.Context, id string) (*domain.Adventure, error) {
	if err := validID(id); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrAdventureNotFound
		}
		return nil, fmt.Errorf("failed to read adventure file: %w", err)
	}

	adv, err := codec.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAdventureNotFound, err)
	}
	return adv, nil
}

// Save persists the adventure atomically.
// It writes to a temporary file first, syncs it, and then renames it over the destination.
func (s *Store) Save(ctx context.Context, adv *domain.Adventure) error {
	if adv == nil {
		return fmt.Errorf("adventure cannot be nil")
	}
	if err := validID(adv.ID); err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure adventure directory: %w", err)
	}

	data, err := codec.EncodeJSON(adv)
	if err != nil {
		return fmt.Errorf("failed to encode adventure: %w", err)
	}

	// Same directory keeps the rename on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+adv.ID+"-*"+ext)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	dest := s.path(adv.ID)
	if err := os.Rename(tmpPath, dest); err != nil {
		// Windows refuses to rename over an existing file.
		if rmErr := os.Remove(dest); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			return fmt.Errorf("failed to replace adventure file: %w", err)
		}
		if err := os.Rename(tmpPath, dest); err != nil {
			return fmt.Errorf("failed to rename temp file: %w", err)
		}
	}
	return nil
}

// Delete removes the adventure file.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}

	err := os.Remove(s.path(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete adventure file: %w", err)
	}
	return nil
}
