// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package recipedoc

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func testHeroImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 24))
	for x := 0; x < 32; x++ {
		for y := 0; y < 24; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(8 * y), B: uint8(8 * x), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testRecord() Record {
	return Record{
		Name:         "Pancakes",
		Description:  "Fluffy breakfast pancakes.",
		PrepTime:     "10 minutes",
		CookTime:     "15 minutes",
		Serves:       "2 servings",
		Ingredients:  []string{"2 eggs", "1 cup flour"},
		Steps:        []string{"Mix.", "Bake."},
		HeroImageKey: "user_uploaded_img_0123456789abcdef.png",
	}
}

func TestComposeProducesPDF(t *testing.T) {
	composer := NewComposer(DefaultMetadata())

	doc, err := composer.Compose(testRecord(), testHeroImage(t))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF-")) {
		t.Error("expected output to start with a PDF header")
	}
}

func TestComposeDeterministic(t *testing.T) {
	composer := NewComposer(DefaultMetadata())
	record := testRecord()
	hero := testHeroImage(t)

	first, err := composer.Compose(record, hero)
	if err != nil {
		t.Fatal(err)
	}
	// Run repeatedly: resource dictionaries come from map iteration and
	// only stay stable with catalog sorting enabled.
	for i := 0; i < 10; i++ {
		next, err := composer.Compose(record, hero)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, next) {
			t.Fatalf("run %d: expected identical inputs to produce byte-identical documents", i)
		}
	}
}

func TestComposeLongMetadataValues(t *testing.T) {
	composer := NewComposer(DefaultMetadata())
	record := testRecord()
	record.PrepTime = "about 45 minutes plus resting overnight in the refrigerator"
	record.CookTime = "between 30 and 40 minutes depending on the oven"

	doc, err := composer.Compose(record, testHeroImage(t))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF-")) {
		t.Error("expected a PDF document")
	}
}

func TestCenterOffset(t *testing.T) {
	tests := []struct {
		w     float64
		textW float64
		want  float64
	}{
		{6, 4, 1},
		{6, 6, 0},
		{6, 9, 0},
	}
	for _, tc := range tests {
		if got := centerOffset(tc.w, tc.textW); got != tc.want {
			t.Errorf("centerOffset(%v, %v) = %v, want %v", tc.w, tc.textW, got, tc.want)
		}
	}
}

func TestComposeEmptyHeroImage(t *testing.T) {
	composer := NewComposer(DefaultMetadata())

	_, err := composer.Compose(testRecord(), nil)
	var missingAsset *MissingAssetError
	if !errors.As(err, &missingAsset) {
		t.Fatalf("expected MissingAssetError, got %v", err)
	}
}

func TestComposeUndecodableHeroImage(t *testing.T) {
	composer := NewComposer(DefaultMetadata())

	_, err := composer.Compose(testRecord(), []byte("definitely not an image"))
	var missingAsset *MissingAssetError
	if !errors.As(err, &missingAsset) {
		t.Fatalf("expected MissingAssetError, got %v", err)
	}
}

func TestComposeManySteps(t *testing.T) {
	composer := NewComposer(DefaultMetadata())
	record := testRecord()
	record.Ingredients = nil
	record.Steps = nil
	for range 40 {
		record.Ingredients = append(record.Ingredients, "1 cup of something")
		record.Steps = append(record.Steps, strings.Repeat("Stir thoroughly. ", 10))
	}

	// Content spanning multiple pages must still compose without error.
	doc, err := composer.Compose(record, testHeroImage(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc) == 0 {
		t.Error("expected non-empty document")
	}
}

func TestStepLabels(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "Step 1."},
		{2, "Step 2."},
		{11, "Step 11."},
	}
	for _, tc := range tests {
		if got := stepLabel(tc.n); got != tc.want {
			t.Errorf("stepLabel(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
