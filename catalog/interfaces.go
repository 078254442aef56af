package catalog

import (
	"context"

	"github.com/poiesic/wayfarer/core"
)

// Collection names served by every catalog backend.
const (
	CollectionDestinations = "destinations"
	CollectionPackages     = "packages"
)

// Store provides read access to the two catalog collections.
// Implementations do not cache: each call re-reads from the backing store,
// which is acceptable at catalog sizes of tens to low thousands of records.
type Store interface {
	// Destinations returns all destination records.
	// Returns ErrCollectionNotFound if the collection does not exist and
	// ErrMalformedCollection if its content cannot be parsed.
	Destinations(ctx context.Context) ([]*core.Destination, error)

	// Packages returns all package records.
	// Same failure contract as Destinations.
	Packages(ctx context.Context) ([]*core.Package, error)

	// Close releases resources held by the store.
	Close() error
}

// Writer provides write access for catalog imports.
// Only the persistent backend implements it.
type Writer interface {
	// PutDestinations stores destination records, replacing any existing
	// record with the same ID.
	PutDestinations(ctx context.Context, dests ...*core.Destination) error

	// PutPackages stores package records, replacing any existing record
	// with the same ID.
	PutPackages(ctx context.Context, pkgs ...*core.Package) error

	// PutFingerprint records the identity of an imported collection.
	PutFingerprint(ctx context.Context, fp *core.Fingerprint) error

	// Fingerprint returns the stored fingerprint for a collection.
	// Returns ErrNotFound if the collection was never imported.
	Fingerprint(ctx context.Context, collection string) (*core.Fingerprint, error)
}
