// Package store abstracts the path-addressed document store the
// repositories persist into. Keys are slash-separated hierarchical paths
// (e.g. "posts/<key>"); values are JSON documents.
package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Get and Update when no document exists at the
// requested path.
var ErrNotFound = errors.New("not found")

type Store interface {
	// Get returns the document stored at path, or ErrNotFound.
	Get(ctx context.Context, path string) (json.RawMessage, error)

	// List returns the direct children of prefix, keyed by the trailing
	// path segment. An absent prefix yields an empty map, not an error.
	List(ctx context.Context, prefix string) (map[string]json.RawMessage, error)

	// Set writes value (anything json.Marshal accepts) at path, replacing
	// any existing document.
	Set(ctx context.Context, path string, value any) error

	// Update shallow-merges fields into the document at path. Returns
	// ErrNotFound when nothing is stored there.
	Update(ctx context.Context, path string, fields map[string]any) error

	// Remove deletes the document at path. Removing an absent path is not
	// an error.
	Remove(ctx context.Context, path string) error

	// GenerateKey returns a fresh opaque key for use as a path segment.
	GenerateKey() string
}
