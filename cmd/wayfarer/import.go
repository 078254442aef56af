package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/wayfarer/ai"
	"github.com/poiesic/wayfarer/ai/openai"
	"github.com/poiesic/wayfarer/catalog"
	"github.com/poiesic/wayfarer/catalog/badger"
	"github.com/poiesic/wayfarer/catalog/jsonfile"
	"github.com/poiesic/wayfarer/ingest"
	"github.com/urfave/cli/v2"
)

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	source, err := loadSource(ctx, c.String("data"))
	if err != nil {
		return err
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()
	store := badger.NewCatalog(backend)

	opts := []ingest.Option{}
	if model := c.String("embedding-model"); model != "" {
		config := ai.NewConfig(
			ai.WithHost(c.String("embedding-host")),
			ai.WithModel(model),
		)
		if err := config.Validate(); err != nil {
			return fmt.Errorf("invalid embedding configuration: %w", err)
		}
		embedder, err := openai.NewEmbedder(config)
		if err != nil {
			return fmt.Errorf("failed to create embedder: %w", err)
		}
		opts = append(opts, ingest.WithEmbedder(embedder))
	}
	if c.IsSet("pool-size") {
		opts = append(opts, ingest.WithPoolSize(c.Int("pool-size")))
	}

	pipeline, err := ingest.NewPipeline(store, opts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	result, err := pipeline.Run(ctx, source)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	for _, collection := range []string{catalog.CollectionDestinations, catalog.CollectionPackages} {
		fp, err := store.Fingerprint(ctx, collection)
		if err != nil {
			return err
		}
		slog.Info("collection imported",
			"collection", fp.Collection, "records", fp.Records, "sum", fp.Sum)
	}

	slog.Info("import complete",
		"destinations", result.DestinationsStored,
		"packages", result.PackagesStored,
		"skipped", result.DestinationsSkipped+result.PackagesSkipped,
		"embedded", result.Embedded)

	return nil
}

// loadSource reads the JSON catalog and its raw bytes so fingerprints cover
// the source exactly as written.
func loadSource(ctx context.Context, dataDir string) (*ingest.Source, error) {
	store := jsonfile.New(dataDir)
	defer store.Close()

	dests, err := store.Destinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load destinations: %w", err)
	}
	pkgs, err := store.Packages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	destBytes, err := store.RawCollection(catalog.CollectionDestinations)
	if err != nil && !errors.Is(err, catalog.ErrCollectionNotFound) {
		return nil, err
	}
	pkgBytes, err := store.RawCollection(catalog.CollectionPackages)
	if err != nil && !errors.Is(err, catalog.ErrCollectionNotFound) {
		return nil, err
	}

	return &ingest.Source{
		Destinations:     dests,
		Packages:         pkgs,
		DestinationBytes: destBytes,
		PackageBytes:     pkgBytes,
	}, nil
}
