// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package generatedocument implements the generate_recipe_document tool
// operation: load the recipe image, compose the PDF, publish it, and record
// the publication in the catalog.
package generatedocument

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thisisashwinraj/agent-after-dark/internal/artifact"
	"github.com/thisisashwinraj/agent-after-dark/internal/catalog"
	"github.com/thisisashwinraj/agent-after-dark/internal/recipedoc"
)

// Request is a finalized recipe record to render and publish.
type Request struct {
	recipedoc.Record
}

// NewHandler returns a Handler. cat may be nil to skip catalog recording.
func NewHandler(store artifact.Store, composer *recipedoc.Composer, publisher *recipedoc.Publisher, cat *catalog.Catalog) *Handler {
	return &Handler{
		store:     store,
		composer:  composer,
		publisher: publisher,
		catalog:   cat,
	}
}

// Handler generates and publishes recipe documents.
type Handler struct {
	store     artifact.Store
	composer  *recipedoc.Composer
	publisher *recipedoc.Publisher
	catalog   *catalog.Catalog
}

// GenerateDocument returns a structured result; pipeline failures surface
// as an error-status result with a sanitized message, never as an error.
func (h *Handler) GenerateDocument(ctx context.Context, req *Request) (*recipedoc.Result, error) {
	if req.HeroImageKey == "" {
		return errorResult("Recipe image artifact ID is missing."), nil
	}

	hero, err := h.store.Load(ctx, req.HeroImageKey)
	if errors.Is(err, artifact.ErrNotFound) {
		return errorResult("Recipe image artifact is missing."), nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "generatedocument: loading recipe image", "key", req.HeroImageKey, "error", err)
		return errorResult("Failed to load the recipe image artifact. Please try uploading it again."), nil
	}
	if len(hero.Data) == 0 {
		return errorResult("Recipe image artifact is missing inline data."), nil
	}

	document, err := h.composer.Compose(req.Record, hero.Data)
	if err != nil {
		var missingAsset *recipedoc.MissingAssetError
		if errors.As(err, &missingAsset) {
			return errorResult("Recipe image could not be used in the document. Please upload a JPEG or PNG image."), nil
		}
		slog.ErrorContext(ctx, "generatedocument: composing document", "recipe", req.Name, "error", err)
		return errorResult("Failed to generate the recipe document. Please try again."), nil
	}

	result := h.publisher.Publish(ctx, req.Record, document)

	if result.Status == recipedoc.StatusSuccess && h.catalog != nil {
		if _, err := h.catalog.Add(ctx, catalog.Document{
			Title:        req.Name,
			ArtifactKey:  result.ArtifactKey,
			HeroImageKey: req.HeroImageKey,
		}); err != nil {
			// The document is already published; catalog entries are
			// best-effort traceability.
			slog.WarnContext(ctx, "generatedocument: recording catalog entry", "key", result.ArtifactKey, "error", err)
		}
	}

	return &result, nil
}

func errorResult(message string) *recipedoc.Result {
	return &recipedoc.Result{
		Status:  recipedoc.StatusError,
		Message: message,
	}
}
