package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/guilhermegouw/leaguebook/internal/events"
	"github.com/guilhermegouw/leaguebook/internal/pubsub"
	"github.com/guilhermegouw/leaguebook/internal/record"
)

// JSONStore keeps the league in a single JSON file.
type JSONStore struct {
	path string
	opts options
}

// NewJSONStore creates a store backed by the file at path. The file is
// created on the first Save.
func NewJSONStore(path string, opts ...Option) *JSONStore {
	return &JSONStore{path: path, opts: newOptions(opts)}
}

// Path returns the data file path.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads and validates the data file.
func (s *JSONStore) Load(_ context.Context) (*record.League, error) {
	start := time.Now()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && len(data) == 0) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalidData, s.path, err)
	}
	league, err := Decode(doc)
	if err != nil {
		return nil, err
	}

	s.opts.publish(pubsub.EventLoaded, events.NewStoreLoadedEvent(BackendJSON, s.path, time.Since(start)))
	return league, nil
}

// Save overwrites the data file with the whole league. The document is
// written to a temporary file first and renamed into place.
func (s *JSONStore) Save(_ context.Context, league *record.League) error {
	start := time.Now()

	data, err := json.MarshalIndent(Encode(league), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling league: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing data file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing data file: %w", err)
	}

	s.opts.publish(pubsub.EventSaved, events.NewStoreSavedEvent(BackendJSON, s.path, time.Since(start)))
	return nil
}
