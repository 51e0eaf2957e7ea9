// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package uploadimage

import (
	"context"
	"fmt"

	"github.com/thisisashwinraj/agent-after-dark/internal/artifact"
	"github.com/thisisashwinraj/agent-after-dark/internal/recipedoc"
)

// Request is an uploaded binary attachment.
type Request struct {
	// DisplayName is the name the content was uploaded under, if any.
	DisplayName string `json:"displayName"`

	// MimeType is the media type of the content, e.g. "image/jpeg".
	MimeType string `json:"mimeType"`

	// Data is the raw content, base64-encoded on the wire.
	Data []byte `json:"data"`
}

// Response identifies the stored artifact.
type Response struct {
	// ArtifactKey is the content-derived key of the artifact.
	ArtifactKey string `json:"artifactKey"`

	// AlreadyStored is true when identical content had been uploaded before
	// and no new artifact was written.
	AlreadyStored bool `json:"alreadyStored"`
}

// NewHandler returns a Handler.
func NewHandler(store artifact.Store) *Handler {
	return &Handler{store: store}
}

// Handler stores uploaded attachments under content-derived keys so
// repeated uploads of identical content reuse the same artifact.
type Handler struct {
	store artifact.Store
}

func (h *Handler) UploadImage(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Data) == 0 {
		return nil, &recipedoc.MissingInputError{Field: "data"}
	}
	if req.MimeType == "" {
		return nil, &recipedoc.MissingInputError{Field: "mimeType"}
	}

	key := artifact.UploadKey(req.DisplayName, req.Data, req.MimeType)

	keys, err := h.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("uploadimage: listing artifacts: %w", err)
	}
	if _, ok := keys[key]; ok {
		return &Response{ArtifactKey: key, AlreadyStored: true}, nil
	}

	if err := h.store.Save(ctx, key, artifact.Blob{
		MIMEType:    req.MimeType,
		Data:        req.Data,
		DisplayName: req.DisplayName,
	}); err != nil {
		return nil, fmt.Errorf("uploadimage: saving artifact: %w", err)
	}
	return &Response{ArtifactKey: key}, nil
}
