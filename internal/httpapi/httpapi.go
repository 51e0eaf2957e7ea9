// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package httpapi adapts typed unary handlers to JSON-over-HTTP endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thisisashwinraj/agent-after-dark/internal/artifact"
	"github.com/thisisashwinraj/agent-after-dark/internal/recipedoc"
)

// Unary adapts a unary handler method to an http.HandlerFunc exchanging
// JSON request and response bodies.
func Unary[Req any, Res any](handle func(context.Context, *Req) (*Res, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}
		}
		serve(w, r, &req, handle)
	}
}

// UnaryPath adapts a unary handler method whose request is populated from a
// URL path parameter rather than a body.
func UnaryPath[Req any, Res any](param string, bind func(*Req, string), handle func(context.Context, *Req) (*Res, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		bind(&req, chi.URLParam(r, param))
		serve(w, r, &req, handle)
	}
}

func serve[Req any, Res any](w http.ResponseWriter, r *http.Request, req *Req, handle func(context.Context, *Req) (*Res, error)) {
	res, err := handle(r.Context(), req)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			slog.ErrorContext(r.Context(), "httpapi: handling request", "path", r.URL.Path, "error", err)
		}
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		slog.ErrorContext(r.Context(), "httpapi: encoding response", "path", r.URL.Path, "error", err)
	}
}

// statusForError maps component errors to HTTP statuses without leaking
// internal detail to the response body.
func statusForError(err error) int {
	var missingInput *recipedoc.MissingInputError
	var missingAsset *recipedoc.MissingAssetError
	switch {
	case errors.Is(err, artifact.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &missingInput):
		return http.StatusBadRequest
	case errors.As(err, &missingAsset):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
