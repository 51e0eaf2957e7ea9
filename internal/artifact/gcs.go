// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSStore stores artifacts as objects in a Cloud Storage bucket under a
// fixed path prefix.
type GCSStore struct {
	storage *storage.Client
	bucket  string
	prefix  string
}

// NewGCSStore returns a GCSStore writing to the given bucket. prefix is
// prepended to every key, e.g. "artifacts/".
func NewGCSStore(storage *storage.Client, bucket string, prefix string) *GCSStore {
	return &GCSStore{
		storage: storage,
		bucket:  bucket,
		prefix:  prefix,
	}
}

func (s *GCSStore) object(key string) *storage.ObjectHandle {
	return s.storage.Bucket(s.bucket).Object(s.prefix + key)
}

// List returns the keys of all stored artifacts.
func (s *GCSStore) List(ctx context.Context) (map[string]struct{}, error) {
	keys := map[string]struct{}{}
	it := s.storage.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: s.prefix})
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return keys, nil
		}
		if err != nil {
			return nil, fmt.Errorf("artifact: listing objects: %w", err)
		}
		keys[strings.TrimPrefix(attrs.Name, s.prefix)] = struct{}{}
	}
}

// Save writes blob to the object for key, overwriting any existing content.
func (s *GCSStore) Save(ctx context.Context, key string, blob Blob) error {
	wc := s.object(key).NewWriter(ctx)
	wc.ContentType = blob.MIMEType
	if _, err := wc.Write(blob.Data); err != nil {
		_ = wc.Close()
		return fmt.Errorf("artifact: writing object: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("artifact: closing object writer: %w", err)
	}
	return nil
}

// Load reads the artifact stored under key.
func (s *GCSStore) Load(ctx context.Context, key string) (Blob, error) {
	rc, err := s.object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return Blob{}, ErrNotFound
	}
	if err != nil {
		return Blob{}, fmt.Errorf("artifact: opening object reader: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	data, err := io.ReadAll(rc)
	if err != nil {
		return Blob{}, fmt.Errorf("artifact: reading object: %w", err)
	}
	return Blob{
		MIMEType: rc.Attrs.ContentType,
		Data:     data,
	}, nil
}
