// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package catalog records published recipe documents in Firestore so
// regenerated documents stay traceable across runs even though the artifact
// store overwrites on identical titles.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const collection = "recipeDocuments"

// Document is a published recipe document recorded in Firestore.
type Document struct {
	// ID is the unique identifier of the catalog entry.
	ID string `firestore:"id"`

	// Title is the recipe title the document was generated from.
	Title string `firestore:"title"`

	// ArtifactKey is the artifact key of the published PDF.
	ArtifactKey string `firestore:"artifactKey"`

	// HeroImageKey is the artifact key of the embedded recipe image.
	HeroImageKey string `firestore:"heroImageKey"`

	// CreatedAt is when the document was published.
	CreatedAt time.Time `firestore:"createdAt"`
}

// Catalog records published documents.
type Catalog struct {
	store *firestore.Client
}

// NewCatalog returns a Catalog writing to store.
func NewCatalog(store *firestore.Client) *Catalog {
	return &Catalog{store: store}
}

// Add records doc and returns the ID of the new entry.
func (c *Catalog) Add(ctx context.Context, doc Document) (string, error) {
	ref := c.store.Collection(collection).NewDoc()
	doc.ID = ref.ID
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	if _, err := ref.Create(ctx, doc); err != nil {
		return "", fmt.Errorf("catalog: creating document entry: %w", err)
	}
	return ref.ID, nil
}

// ByTitle returns all entries published under title, so collisions between
// unrelated recipes sharing a name remain observable.
func (c *Catalog) ByTitle(ctx context.Context, title string) ([]Document, error) {
	var docs []Document
	iter := c.store.Collection(collection).Where("title", "==", title).Documents(ctx)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: iterating document entries: %w", err)
		}
		var doc Document
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("catalog: decoding document entry: %w", err)
		}
		docs = append(docs, doc)
	}
}
