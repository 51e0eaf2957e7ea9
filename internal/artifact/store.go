// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package artifact

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Load when no artifact exists under the
// requested key.
var ErrNotFound = errors.New("artifact: not found")

// Blob is the binary payload of an artifact together with its MIME type and
// an optional display name from the uploader.
type Blob struct {
	// MIMEType is the IANA media type of Data, e.g. "image/jpeg".
	MIMEType string

	// Data is the raw content of the artifact.
	Data []byte

	// DisplayName is the name the content was uploaded under, if any.
	DisplayName string
}

// Store is a content-addressable store of artifacts keyed by string. Keys
// for uploads are derived from content so identical uploads collide
// intentionally; keys for generated documents are human-readable slugs with
// last-write-wins overwrite semantics.
//
// Implementations must be safe for concurrent use across disjoint keys.
// Same-key writes of identical content may race benignly.
type Store interface {
	// List returns the set of keys currently stored.
	List(ctx context.Context) (map[string]struct{}, error)

	// Save persists blob under key, overwriting any existing artifact.
	Save(ctx context.Context, key string, blob Blob) error

	// Load returns the artifact stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) (Blob, error)
}
