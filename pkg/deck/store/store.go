// Package store provides persistence backends for slide decks.
//
// This package defines a small Store interface with implementations for
// different backends:
//   - file: A directory of TOML deck files, for CLI and single-host use
//   - mongo: MongoDB-backed storage for the control server
//
// Deck names are the storage keys; they are validated conservatively
// (see errors.ValidateDeckName) because they become file basenames and
// database IDs.
package store

import (
	"context"

	"github.com/slidekit/carousel/pkg/deck"
)

// Store is the interface for deck storage backends.
type Store interface {
	// List returns the names of all stored decks, sorted.
	List(ctx context.Context) ([]string, error)

	// Get retrieves a deck by name.
	// Returns an ErrCodeDeckNotFound error if the deck doesn't exist.
	Get(ctx context.Context, name string) (*deck.Deck, error)

	// Put stores a deck under the given name, replacing any existing one.
	Put(ctx context.Context, name string, d *deck.Deck) error

	// Delete removes a deck. Deleting a missing deck is a no-op.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}
