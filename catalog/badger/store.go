package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/wayfarer/catalog"
	"github.com/poiesic/wayfarer/core"
)

// Catalog implements catalog.Store and catalog.Writer on a BadgerDB backend.
// It serves a catalog previously written by the ingest pipeline.
type Catalog struct {
	backend *Backend
}

var (
	_ catalog.Store  = (*Catalog)(nil)
	_ catalog.Writer = (*Catalog)(nil)
)

// NewCatalog creates a Catalog on the given backend.
func NewCatalog(backend *Backend) *Catalog {
	return &Catalog{backend: backend}
}

// Close closes the underlying backend.
func (c *Catalog) Close() error {
	return c.backend.Close()
}

// Destinations returns all stored destination records.
// A store that was never imported into yields an empty slice, not an error.
func (c *Catalog) Destinations(ctx context.Context) ([]*core.Destination, error) {
	if c.backend.IsClosed() {
		return nil, catalog.ErrStoreClosed
	}

	var dests []*core.Destination
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(destinationPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				dest, err := catalog.UnmarshalDestination(val)
				if err != nil {
					return err
				}
				dests = append(dests, dest)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return dests, nil
}

// Packages returns all stored package records.
func (c *Catalog) Packages(ctx context.Context) ([]*core.Package, error) {
	if c.backend.IsClosed() {
		return nil, catalog.ErrStoreClosed
	}

	var pkgs []*core.Package
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(packagePrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				pkg, err := catalog.UnmarshalPackage(val)
				if err != nil {
					return err
				}
				pkgs = append(pkgs, pkg)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

// PutDestinations stores destination records, replacing existing ones.
func (c *Catalog) PutDestinations(ctx context.Context, dests ...*core.Destination) error {
	return c.backend.WithTx(func(tx *badger.Txn) error {
		for _, dest := range dests {
			if err := core.ValidateDestination(dest); err != nil {
				return err
			}
			if err := tx.Set(makeDestinationKey(dest.Id), catalog.MarshalDestination(dest)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// PutPackages stores package records, replacing existing ones.
func (c *Catalog) PutPackages(ctx context.Context, pkgs ...*core.Package) error {
	return c.backend.WithTx(func(tx *badger.Txn) error {
		for _, pkg := range pkgs {
			if err := core.ValidatePackage(pkg); err != nil {
				return err
			}
			if err := tx.Set(makePackageKey(pkg.Id), catalog.MarshalPackage(pkg)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// PutFingerprint records the identity of an imported collection.
func (c *Catalog) PutFingerprint(ctx context.Context, fp *core.Fingerprint) error {
	return c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeFingerprintKey(fp.Collection), catalog.MarshalFingerprint(fp)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Fingerprint returns the stored fingerprint for a collection.
// Returns catalog.ErrNotFound if the collection was never imported.
func (c *Catalog) Fingerprint(ctx context.Context, collection string) (*core.Fingerprint, error) {
	var fp *core.Fingerprint
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeFingerprintKey(collection))
		if err == badger.ErrKeyNotFound {
			return catalog.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			fp, err = catalog.UnmarshalFingerprint(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return fp, nil
}
