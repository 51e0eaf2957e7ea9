// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package uploadimage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thisisashwinraj/agent-after-dark/internal/artifact"
	"github.com/thisisashwinraj/agent-after-dark/internal/recipedoc"
)

func TestUploadImageStores(t *testing.T) {
	ctx := context.Background()
	store := artifact.NewMemoryStore()
	handler := NewHandler(store)

	res, err := handler.UploadImage(ctx, &Request{
		DisplayName: "dish.jpg",
		MimeType:    "image/jpeg",
		Data:        []byte("jpeg bytes"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.ArtifactKey, "user_uploaded_img_") || !strings.HasSuffix(res.ArtifactKey, ".jpeg") {
		t.Errorf("unexpected artifact key %s", res.ArtifactKey)
	}
	if res.AlreadyStored {
		t.Error("expected first upload to be newly stored")
	}

	blob, err := store.Load(ctx, res.ArtifactKey)
	if err != nil {
		t.Fatal(err)
	}
	if string(blob.Data) != "jpeg bytes" {
		t.Error("stored data does not match upload")
	}
}

func TestUploadImageDedups(t *testing.T) {
	ctx := context.Background()
	store := artifact.NewMemoryStore()
	handler := NewHandler(store)

	req := &Request{DisplayName: "dish.jpg", MimeType: "image/jpeg", Data: []byte("jpeg bytes")}

	first, err := handler.UploadImage(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := handler.UploadImage(ctx, req)
	if err != nil {
		t.Fatal(err)
	}

	if first.ArtifactKey != second.ArtifactKey {
		t.Errorf("expected identical keys, got %s and %s", first.ArtifactKey, second.ArtifactKey)
	}
	if !second.AlreadyStored {
		t.Error("expected second upload to be deduplicated")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 stored artifact, got %d", store.Len())
	}
}

func TestUploadImageMissingData(t *testing.T) {
	handler := NewHandler(artifact.NewMemoryStore())

	_, err := handler.UploadImage(context.Background(), &Request{MimeType: "image/jpeg"})
	var missingInput *recipedoc.MissingInputError
	if !errors.As(err, &missingInput) {
		t.Fatalf("expected MissingInputError, got %v", err)
	}
}
