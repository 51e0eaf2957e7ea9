// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package recipedoc

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/thisisashwinraj/agent-after-dark/internal/artifact"
)

// documentKeySuffix is appended to the slug of the recipe name to form the
// artifact key of a generated document.
const documentKeySuffix = "_recipe.pdf"

// Result is the structured outcome of a publish operation. It is the exact
// shape the reasoning collaborator parses to decide success or failure
// messaging, so its fields and status values must stay stable.
type Result struct {
	// Status is "success" or "error".
	Status string `json:"status"`

	// Message is a short human-readable description of the outcome.
	Message string `json:"message"`

	// ArtifactKey is the key of the published document, present only on
	// success.
	ArtifactKey string `json:"generated_file_artifact_id,omitempty"`
}

// StatusSuccess and StatusError are the values of Result.Status.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Publisher persists composed documents as artifacts.
type Publisher struct {
	store artifact.Store
}

// NewPublisher returns a Publisher saving documents to store.
func NewPublisher(store artifact.Store) *Publisher {
	return &Publisher{store: store}
}

// DocumentKey derives the artifact key for a generated document from the
// recipe name: lowercased, whitespace runs replaced with single
// underscores, with a fixed suffix. Keys deliberately collide across runs
// for the same title; the store overwrites, last write wins.
func DocumentKey(recipeName string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(recipeName)), "_")
	return slug + documentKeySuffix
}

// Publish saves document under the key derived from record.Name and returns
// a structured result. Store failures are retried with exponential backoff
// (saves of identical content are idempotent) and surface as an error
// result with a sanitized message, never as a raw error.
func (p *Publisher) Publish(ctx context.Context, record Record, document []byte) Result {
	key := DocumentKey(record.Name)

	save := func() (struct{}, error) {
		return struct{}{}, p.store.Save(ctx, key, artifact.Blob{
			MIMEType: "application/pdf",
			Data:     document,
		})
	}
	if _, err := backoff.Retry(ctx, save,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(30*time.Second),
	); err != nil {
		slog.ErrorContext(ctx, "recipedoc: saving generated document", "key", key, "error", err)
		return Result{
			Status:  StatusError,
			Message: "Failed to store the generated recipe document. Please try again.",
		}
	}

	return Result{
		Status:      StatusSuccess,
		Message:     "Recipe document generated successfully.",
		ArtifactKey: key,
	}
}
