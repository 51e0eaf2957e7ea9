// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getartifact

import (
	"context"
	"fmt"

	"github.com/thisisashwinraj/agent-after-dark/internal/artifact"
)

// Request identifies the artifact to fetch.
type Request struct {
	// Key is the artifact key.
	Key string `json:"key"`
}

// Response is the fetched artifact.
type Response struct {
	// Key is the artifact key.
	Key string `json:"key"`

	// MimeType is the media type of the content.
	MimeType string `json:"mimeType"`

	// Data is the raw content, base64-encoded on the wire.
	Data []byte `json:"data"`
}

// NewHandler returns a Handler.
func NewHandler(store artifact.Store) *Handler {
	return &Handler{store: store}
}

// Handler fetches stored artifacts by key.
type Handler struct {
	store artifact.Store
}

func (h *Handler) GetArtifact(ctx context.Context, req *Request) (*Response, error) {
	blob, err := h.store.Load(ctx, req.Key)
	if err != nil {
		return nil, fmt.Errorf("getartifact: loading artifact: %w", err)
	}
	return &Response{
		Key:      req.Key,
		MimeType: blob.MIMEType,
		Data:     blob.Data,
	}, nil
}
