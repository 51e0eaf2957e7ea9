// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package recipedoc renders finalized recipes into paginated PDF documents
// and publishes them as artifacts.
package recipedoc

import "fmt"

// Record is the finalized, structured representation of a recipe ready for
// document rendering. It is fully constructed before composition starts and
// not mutated afterwards. The order of Ingredients and Steps is preserved
// through rendering.
type Record struct {
	// Name is the title of the recipe.
	Name string `json:"name"`

	// Description is a short introduction to the recipe.
	Description string `json:"description"`

	// PrepTime is the preparation time as free-form text, e.g. "15 minutes".
	PrepTime string `json:"prepTime"`

	// CookTime is the cooking time as free-form text.
	CookTime string `json:"cookTime"`

	// Serves is the number of servings as free-form text.
	Serves string `json:"serves"`

	// Ingredients are the ingredients of the recipe, one per line.
	Ingredients []string `json:"ingredients"`

	// Steps are the step-by-step cooking instructions.
	Steps []string `json:"steps"`

	// HeroImageKey is the artifact key of the recipe image to embed.
	HeroImageKey string `json:"heroImageKey"`
}

// MissingInputError indicates a required input field was absent.
type MissingInputError struct {
	// Field is the name of the missing field.
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("recipedoc: missing required input %s", e.Field)
}

// MissingAssetError indicates a referenced asset was absent or unusable,
// e.g. a hero image that is empty or not a decodable raster image.
type MissingAssetError struct {
	// Reason describes why the asset is unusable.
	Reason string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *MissingAssetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("recipedoc: missing asset: %s: %v", e.Reason, e.Cause)
	}
	return "recipedoc: missing asset: " + e.Reason
}

func (e *MissingAssetError) Unwrap() error {
	return e.Cause
}
