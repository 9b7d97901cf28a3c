package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/slidekit/carousel/pkg/deck"
	"github.com/slidekit/carousel/pkg/errors"
	"github.com/slidekit/carousel/pkg/observability"
)

// deckExt is the file extension for stored decks.
const deckExt = ".toml"

// FileStore keeps decks as TOML files in a single directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based deck store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "create deck directory %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

// List returns the names of all deck files, sorted.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read deck directory %s", s.dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), deckExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), deckExt))
	}
	sort.Strings(names)
	return names, nil
}

// Get reads and parses a deck by name.
func (s *FileStore) Get(ctx context.Context, name string) (*deck.Deck, error) {
	if err := errors.ValidateDeckName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeDeckNotFound, "deck %q not found", name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read deck %q", name)
	}

	d, err := deck.Parse(data)
	if err != nil {
		observability.Stores().OnDeckLoad(name, 0, err)
		return nil, err
	}
	observability.Stores().OnDeckLoad(name, len(d.Slides), nil)
	return d, nil
}

// Put writes a deck to its file, replacing any existing one.
func (s *FileStore) Put(ctx context.Context, name string, d *deck.Deck) error {
	if err := errors.ValidateDeckName(name); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	data, err := deck.Marshal(d)
	if err != nil {
		observability.Stores().OnDeckSave(name, err)
		return err
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		err = errors.Wrap(errors.ErrCodeStore, err, "write deck %q", name)
		observability.Stores().OnDeckSave(name, err)
		return err
	}
	observability.Stores().OnDeckSave(name, nil)
	return nil
}

// Delete removes a deck file. Missing files are ignored.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateDeckName(name); err != nil {
		return err
	}

	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete deck %q", name)
	}
	return nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+deckExt)
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
