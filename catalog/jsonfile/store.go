package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/poiesic/wayfarer/catalog"
	"github.com/poiesic/wayfarer/core"
)

// Store reads catalog collections from JSON files in a directory.
// Each collection lives in <dir>/<collection>.json as a flat JSON array.
// There is no caching: every call re-reads the file.
type Store struct {
	dir    string
	logger *slog.Logger
}

var _ catalog.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// New creates a Store backed by JSON files in dir.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir:    dir,
		logger: slog.Default().With("component", "jsonfile-catalog"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Destinations reads and validates the destinations collection.
// Records failing validation are skipped with a warning; records without an
// id get a content-based one so the join key is always populated.
func (s *Store) Destinations(ctx context.Context) ([]*core.Destination, error) {
	raw, err := s.read(catalog.CollectionDestinations)
	if err != nil {
		return nil, err
	}

	var records []*core.Destination
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", catalog.ErrMalformedCollection, catalog.CollectionDestinations, err)
	}

	dests := make([]*core.Destination, 0, len(records))
	for _, dest := range records {
		if dest == nil {
			continue
		}
		if dest.Id == 0 {
			dest.Id = core.IDFromContent(dest.Name + "|" + dest.Country)
		}
		if err := core.ValidateDestination(dest); err != nil {
			s.logger.Warn("skipping invalid destination record", "name", dest.Name, "err", err)
			continue
		}
		dests = append(dests, dest)
	}
	return dests, nil
}

// Packages reads and validates the packages collection.
// Same tolerance rules as Destinations. A package whose destination does not
// exist is NOT rejected here; the recommender excludes it at join time.
func (s *Store) Packages(ctx context.Context) ([]*core.Package, error) {
	raw, err := s.read(catalog.CollectionPackages)
	if err != nil {
		return nil, err
	}

	var records []*core.Package
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", catalog.ErrMalformedCollection, catalog.CollectionPackages, err)
	}

	pkgs := make([]*core.Package, 0, len(records))
	for _, pkg := range records {
		if pkg == nil {
			continue
		}
		if pkg.Id == 0 {
			pkg.Id = core.IDFromContent(pkg.Name + "|" + strconv.FormatUint(uint64(pkg.DestinationId), 10))
		}
		if err := core.ValidatePackage(pkg); err != nil {
			s.logger.Warn("skipping invalid package record", "name", pkg.Name, "err", err)
			continue
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

// Close is a no-op: the store holds no open resources between calls.
func (s *Store) Close() error {
	return nil
}

// RawCollection returns the unparsed bytes of a collection file.
// Importers use it to fingerprint the source.
func (s *Store) RawCollection(collection string) ([]byte, error) {
	return s.read(collection)
}

func (s *Store) read(collection string) ([]byte, error) {
	path := filepath.Join(s.dir, collection+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", catalog.ErrCollectionNotFound, collection)
		}
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}
	return raw, nil
}
