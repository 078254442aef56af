package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/wayfarer/ai/mock"
	"github.com/poiesic/wayfarer/catalog"
	"github.com/poiesic/wayfarer/catalog/badger"
	"github.com/poiesic/wayfarer/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 {
	return &v
}

func testSource() *Source {
	return &Source{
		Destinations: []*core.Destination{
			{Id: 1, Name: "Lisbon", Country: "Portugal", Climate: core.ClimateWarm, Activities: "beach,culture"},
			{Id: 2, Name: "Tromso", Country: "Norway", Climate: core.ClimateCold, Activities: "skiing"},
		},
		Packages: []*core.Package{
			{Id: 10, DestinationId: 1, Name: "Lisbon Week", Budget: core.BudgetMedium, Nights: 6, Price: price(1200)},
			{Id: 11, DestinationId: 2, Name: "Arctic Escape", Budget: core.BudgetHigh, Nights: 4},
		},
	}
}

func newTestStore(t *testing.T) *badger.Catalog {
	t.Helper()
	store, err := badger.NewMemoryCatalog()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewPipeline_RequiresStore(t *testing.T) {
	_, err := NewPipeline(nil)
	assert.ErrorIs(t, err, ErrStoreRequired)
}

func TestPipeline_Run(t *testing.T) {
	store := newTestStore(t)
	p, err := NewPipeline(store)
	require.NoError(t, err)
	defer p.Release()

	result, err := p.Run(context.Background(), testSource())
	require.NoError(t, err)

	assert.Equal(t, 2, result.DestinationsStored)
	assert.Equal(t, 2, result.PackagesStored)
	assert.Equal(t, 0, result.DestinationsSkipped)
	assert.Equal(t, 0, result.PackagesSkipped)
	assert.Equal(t, 0, result.Embedded)

	dests, err := store.Destinations(context.Background())
	require.NoError(t, err)
	assert.Len(t, dests, 2)

	pkgs, err := store.Packages(context.Background())
	require.NoError(t, err)
	require.Len(t, pkgs, 2)
	for _, pkg := range pkgs {
		assert.Empty(t, pkg.Vector)
	}
}

func TestPipeline_Run_NilSource(t *testing.T) {
	p, err := NewPipeline(newTestStore(t))
	require.NoError(t, err)
	defer p.Release()

	_, err = p.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrSourceRequired)
}

func TestPipeline_Run_SkipsInvalidRecords(t *testing.T) {
	store := newTestStore(t)
	p, err := NewPipeline(store)
	require.NoError(t, err)
	defer p.Release()

	source := testSource()
	source.Destinations = append(source.Destinations, &core.Destination{Id: 3}) // no name
	source.Packages = append(source.Packages,
		&core.Package{Id: 12, Name: "No Destination"},
		&core.Package{Id: 13, DestinationId: 1, Name: "Bad Nights", Nights: -1},
	)

	result, err := p.Run(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, 2, result.DestinationsStored)
	assert.Equal(t, 1, result.DestinationsSkipped)
	assert.Equal(t, 2, result.PackagesStored)
	assert.Equal(t, 2, result.PackagesSkipped)
}

func TestPipeline_Run_EmbedsJoinablePackages(t *testing.T) {
	store := newTestStore(t)
	embedder := mock.NewMockEmbedder()
	p, err := NewPipeline(store, WithEmbedder(embedder), WithPoolSize(2))
	require.NoError(t, err)
	defer p.Release()

	source := testSource()
	// Dangling reference is valid but cannot be joined, so it gets no vector.
	source.Packages = append(source.Packages,
		&core.Package{Id: 12, DestinationId: 99, Name: "Orphan Deal", Nights: 3})

	result, err := p.Run(context.Background(), source)
	require.NoError(t, err)
	assert.Equal(t, 3, result.PackagesStored)
	assert.Equal(t, 2, result.Embedded)

	pkgs, err := store.Packages(context.Background())
	require.NoError(t, err)
	require.Len(t, pkgs, 3)

	byName := make(map[string]*core.Package, len(pkgs))
	for _, pkg := range pkgs {
		byName[pkg.Name] = pkg
	}
	assert.NotEmpty(t, byName["Lisbon Week"].Vector)
	assert.NotEmpty(t, byName["Arctic Escape"].Vector)
	assert.Empty(t, byName["Orphan Deal"].Vector)
}

func TestPipeline_Run_EmbeddingFailureLeavesPackage(t *testing.T) {
	store := newTestStore(t)
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("model gone")
	}
	p, err := NewPipeline(store, WithEmbedder(embedder))
	require.NoError(t, err)
	defer p.Release()

	result, err := p.Run(context.Background(), testSource())
	require.NoError(t, err)
	assert.Equal(t, 2, result.PackagesStored)
	assert.Equal(t, 0, result.Embedded)

	pkgs, err := store.Packages(context.Background())
	require.NoError(t, err)
	require.Len(t, pkgs, 2)
	for _, pkg := range pkgs {
		assert.Empty(t, pkg.Vector)
	}
}

func TestPipeline_Run_WritesFingerprints(t *testing.T) {
	store := newTestStore(t)
	p, err := NewPipeline(store)
	require.NoError(t, err)
	defer p.Release()

	source := testSource()
	source.DestinationBytes = []byte(`[{"id":1}]`)
	source.PackageBytes = []byte(`[{"id":10}]`)

	_, err = p.Run(context.Background(), source)
	require.NoError(t, err)

	destFP, err := store.Fingerprint(context.Background(), catalog.CollectionDestinations)
	require.NoError(t, err)
	assert.Equal(t, core.IDFromContent(`[{"id":1}]`), destFP.Sum)
	assert.Equal(t, 2, destFP.Records)
	assert.False(t, destFP.ImportedAt.IsZero())

	pkgFP, err := store.Fingerprint(context.Background(), catalog.CollectionPackages)
	require.NoError(t, err)
	assert.Equal(t, core.IDFromContent(`[{"id":10}]`), pkgFP.Sum)
	assert.Equal(t, 2, pkgFP.Records)
}

func TestPipeline_Run_FingerprintFromContents(t *testing.T) {
	store := newTestStore(t)
	p, err := NewPipeline(store)
	require.NoError(t, err)
	defer p.Release()

	_, err = p.Run(context.Background(), testSource())
	require.NoError(t, err)

	first, err := store.Fingerprint(context.Background(), catalog.CollectionDestinations)
	require.NoError(t, err)

	// Identical source yields an identical sum on reimport.
	_, err = p.Run(context.Background(), testSource())
	require.NoError(t, err)

	second, err := store.Fingerprint(context.Background(), catalog.CollectionDestinations)
	require.NoError(t, err)
	assert.Equal(t, first.Sum, second.Sum)
}
