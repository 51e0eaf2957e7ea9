// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package enrichrequest

import (
	"context"

	"google.golang.org/genai"

	"github.com/thisisashwinraj/agent-after-dark/internal/enrich"
)

// Request is an outbound model request's message history.
type Request struct {
	// Contents are the conversational turns to enrich, oldest first.
	Contents []*genai.Content `json:"contents"`
}

// Response is the enriched message history.
type Response struct {
	// Contents are the enriched turns, in the same order as the request.
	Contents []*genai.Content `json:"contents"`
}

// NewHandler returns a Handler.
func NewHandler(enricher *enrich.Enricher) *Handler {
	return &Handler{enricher: enricher}
}

// Handler expands binary and tool-response parts of a model request before
// it is sent by the reasoning collaborator.
type Handler struct {
	enricher *enrich.Enricher
}

func (h *Handler) EnrichRequest(ctx context.Context, req *Request) (*Response, error) {
	return &Response{
		Contents: h.enricher.EnrichContents(ctx, req.Contents),
	}, nil
}
