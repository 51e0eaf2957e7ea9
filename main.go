// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/thisisashwinraj/agent-after-dark/internal/artifact"
	"github.com/thisisashwinraj/agent-after-dark/internal/catalog"
	"github.com/thisisashwinraj/agent-after-dark/internal/config"
	"github.com/thisisashwinraj/agent-after-dark/internal/enrich"
	"github.com/thisisashwinraj/agent-after-dark/internal/handler/enrichrequest"
	"github.com/thisisashwinraj/agent-after-dark/internal/handler/generatedocument"
	"github.com/thisisashwinraj/agent-after-dark/internal/handler/getartifact"
	"github.com/thisisashwinraj/agent-after-dark/internal/handler/uploadimage"
	"github.com/thisisashwinraj/agent-after-dark/internal/httpapi"
	"github.com/thisisashwinraj/agent-after-dark/internal/recipedoc"
)

//go:embed conf/agent.yaml
var confDefaults []byte

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.ErrorContext(ctx, "main: exiting", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	conf, err := config.Load(confDefaults)
	if err != nil {
		return fmt.Errorf("main: loading config: %w", err)
	}

	storageClient, err := storage.NewGRPCClient(ctx)
	if err != nil {
		return fmt.Errorf("main: create storage client: %w", err)
	}
	defer func() {
		if err := storageClient.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close storage client", "error", err)
		}
	}()

	firestoreClient, err := firestore.NewClient(ctx, conf.Google.Project)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestoreClient.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	store := artifact.NewGCSStore(storageClient, conf.Artifacts.Bucket, conf.Artifacts.Prefix)
	composer := recipedoc.NewComposer(conf.Document)
	publisher := recipedoc.NewPublisher(store)
	documents := catalog.NewCatalog(firestoreClient)
	enricher := enrich.NewEnricher(store)

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(middleware.Recoverer)

	mux.Post("/api/artifacts", httpapi.Unary(uploadimage.NewHandler(store).UploadImage))
	mux.Get("/api/artifacts/{key}", httpapi.UnaryPath("key",
		func(req *getartifact.Request, key string) { req.Key = key },
		getartifact.NewHandler(store).GetArtifact,
	))
	mux.Post("/api/documents", httpapi.Unary(
		generatedocument.NewHandler(store, composer, publisher, documents).GenerateDocument,
	))
	mux.Post("/api/model-requests/enrich", httpapi.Unary(enrichrequest.NewHandler(enricher).EnrichRequest))

	srv := &http.Server{
		Addr:              conf.Server.Address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var grp errgroup.Group
	grp.Go(func() error {
		slog.InfoContext(ctx, "main: listening", "address", conf.Server.Address)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("main: serving: %w", err)
		}
		return nil
	})
	grp.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("main: shutting down: %w", err)
		}
		return nil
	})
	return grp.Wait()
}
