// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package artifact

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-memory Store for tests and local runs.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string]Blob
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: map[string]Blob{},
	}
}

// List returns the keys of all stored artifacts.
func (s *MemoryStore) List(_ context.Context) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make(map[string]struct{}, len(s.blobs))
	for key := range s.blobs {
		keys[key] = struct{}{}
	}
	return keys, nil
}

// Save stores blob under key, overwriting any existing artifact.
func (s *MemoryStore) Save(_ context.Context, key string, blob Blob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob.Data = slices.Clone(blob.Data)
	s.blobs[key] = blob
	return nil
}

// Load returns the artifact stored under key, or ErrNotFound.
func (s *MemoryStore) Load(_ context.Context, key string) (Blob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok := s.blobs[key]
	if !ok {
		return Blob{}, ErrNotFound
	}
	blob.Data = slices.Clone(blob.Data)
	return blob, nil
}

// Len returns the number of stored artifacts.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
