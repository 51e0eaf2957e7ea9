// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
)

func TestUploadKeyFormat(t *testing.T) {
	data := []byte("jpeg bytes")

	digest := sha256.Sum256(append([]byte("dish.jpg"), data...))
	want := fmt.Sprintf("user_uploaded_img_%s.jpg", hex.EncodeToString(digest[:])[:16])

	got := UploadKey("dish.jpg", data, "image/jpg")
	if got != want {
		t.Errorf("expected key %s, got %s", want, got)
	}
}

func TestUploadKeyIdempotent(t *testing.T) {
	data := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02}

	first := UploadKey("dish.jpg", data, "image/jpeg")
	second := UploadKey("dish.jpg", data, "image/jpeg")
	if first != second {
		t.Errorf("expected identical keys, got %s and %s", first, second)
	}
}

func TestUploadKeyDifferentContent(t *testing.T) {
	first := UploadKey("dish.jpg", []byte("content a"), "image/jpeg")
	second := UploadKey("dish.jpg", []byte("content b"), "image/jpeg")
	if first == second {
		t.Errorf("expected different keys for different content, got %s", first)
	}
}

func TestUploadKeyDifferentName(t *testing.T) {
	data := []byte("same bytes")

	first := UploadKey("a.jpg", data, "image/jpeg")
	second := UploadKey("b.jpg", data, "image/jpeg")
	if first == second {
		t.Errorf("expected different keys for different names, got %s", first)
	}
}

func TestUploadKeyDefaultName(t *testing.T) {
	data := []byte("anonymous upload")

	unnamed := UploadKey("", data, "image/png")
	named := UploadKey("uploaded_image", data, "image/png")
	if unnamed != named {
		t.Errorf("expected unnamed upload to use default placeholder, got %s and %s", unnamed, named)
	}
}

func TestUploadKeyExtension(t *testing.T) {
	tests := []struct {
		mimeType string
		ext      string
	}{
		{"image/jpeg", "jpeg"},
		{"image/png", "png"},
		{"application/pdf", "pdf"},
	}
	for _, tc := range tests {
		key := UploadKey("file", []byte("x"), tc.mimeType)
		if want := "." + tc.ext; key[len(key)-len(want):] != want {
			t.Errorf("expected key for %s to end with %s, got %s", tc.mimeType, want, key)
		}
	}
}
