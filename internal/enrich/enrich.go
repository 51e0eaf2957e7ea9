// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package enrich rewrites model-facing request contents so that binary
// parts are persisted as artifacts and labeled before they reach the model,
// and so that tool responses referencing artifacts have the artifact
// content inlined after them.
package enrich

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/thisisashwinraj/agent-after-dark/internal/artifact"
)

// GenerateRecipeDocumentTool is the name of the document generation tool
// whose responses carry a generated artifact key.
const GenerateRecipeDocumentTool = "generate_recipe_document"

// responseKeyFields are the function response fields that may hold an
// artifact key, in preference order.
var responseKeyFields = []string{"generated_file_artifact_id", "tool_response_artifact_id"}

// A ResponseExpander extracts an artifact key from a function response, or
// returns "" when the response references no artifact.
type ResponseExpander func(response map[string]any) string

// Enricher expands binary and tool-response parts of request contents.
// Construct with NewEnricher; the zero value passes everything through.
type Enricher struct {
	store     artifact.Store
	expanders map[string]ResponseExpander
}

// NewEnricher returns an Enricher persisting artifacts to store. Responses
// of the generate_recipe_document tool are expanded by default; additional
// tools are added with RegisterTool.
func NewEnricher(store artifact.Store) *Enricher {
	e := &Enricher{
		store:     store,
		expanders: map[string]ResponseExpander{},
	}
	e.RegisterTool(GenerateRecipeDocumentTool, artifactKeyField)
	return e
}

// RegisterTool registers a tool whose function responses should have their
// referenced artifact inlined.
func (e *Enricher) RegisterTool(name string, expander ResponseExpander) {
	e.expanders[name] = expander
}

// EnrichContents returns a copy of contents with binary and recognized
// tool-response parts expanded. The number and order of contents is
// unchanged; within each content, parts keep their relative order and may
// only grow in place. Failures to persist or load artifacts degrade to
// passing the original part through and are logged, never returned.
func (e *Enricher) EnrichContents(ctx context.Context, contents []*genai.Content) []*genai.Content {
	enriched := make([]*genai.Content, len(contents))
	for i, content := range contents {
		enriched[i] = e.enrichContent(ctx, content)
	}
	return enriched
}

func (e *Enricher) enrichContent(ctx context.Context, content *genai.Content) *genai.Content {
	if content == nil || len(content.Parts) == 0 {
		return content
	}

	parts := make([]*genai.Part, 0, len(content.Parts))
	for _, part := range content.Parts {
		switch {
		case part.InlineData != nil:
			parts = append(parts, e.expandInlineData(ctx, part)...)
		case part.FunctionResponse != nil:
			parts = append(parts, e.expandFunctionResponse(ctx, part)...)
		default:
			parts = append(parts, part)
		}
	}
	return &genai.Content{
		Role:  content.Role,
		Parts: parts,
	}
}

// expandInlineData persists an uploaded binary part under its derived key
// and prefixes it with a labeling text part so the model never sees raw
// content unlabeled. The original part is emitted even if persistence
// fails, so the model still sees the content this turn.
func (e *Enricher) expandInlineData(ctx context.Context, part *genai.Part) []*genai.Part {
	data := part.InlineData
	key := artifact.UploadKey(data.DisplayName, data.Data, data.MIMEType)

	keys, err := e.store.List(ctx)
	if err != nil {
		slog.WarnContext(ctx, "enrich: listing artifacts", "error", err)
		keys = nil
	}
	if _, ok := keys[key]; !ok {
		if err := e.store.Save(ctx, key, artifact.Blob{
			MIMEType:    data.MIMEType,
			Data:        data.Data,
			DisplayName: data.DisplayName,
		}); err != nil {
			slog.WarnContext(ctx, "enrich: saving uploaded artifact", "key", key, "error", err)
		}
	}

	label := fmt.Sprintf("[User Uploaded Artifact]\nBelow is the content of artifact ID : %s", key)
	return []*genai.Part{genai.NewPartFromText(label), part}
}

// expandFunctionResponse inlines the artifact referenced by a registered
// tool's response after the response part. Unregistered tools and responses
// without an artifact key pass through unchanged, as does the original part
// when the referenced artifact is missing.
func (e *Enricher) expandFunctionResponse(ctx context.Context, part *genai.Part) []*genai.Part {
	resp := part.FunctionResponse
	expander, ok := e.expanders[resp.Name]
	if !ok {
		return []*genai.Part{part}
	}
	key := expander(resp.Response)
	if key == "" {
		return []*genai.Part{part}
	}

	blob, err := e.store.Load(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "enrich: loading tool response artifact", "tool", resp.Name, "key", key, "error", err)
		return []*genai.Part{part}
	}

	label := fmt.Sprintf("[Tool Response Artifact]\nBelow is the content of artifact ID : %s", key)
	return []*genai.Part{
		part,
		genai.NewPartFromText(label),
		genai.NewPartFromBytes(blob.Data, blob.MIMEType),
	}
}

func artifactKeyField(response map[string]any) string {
	for _, field := range responseKeyFields {
		if key, ok := response[field].(string); ok && key != "" {
			return key
		}
	}
	return ""
}
