package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/wayfarer/catalog"
	"github.com/poiesic/wayfarer/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRoundTrip(t *testing.T) {
	cat, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer cat.Close()

	ctx := context.Background()
	price := 500.0

	dests := []*core.Destination{
		{Id: 1, Name: "Lisbon", Country: "Portugal", Climate: core.ClimateWarm, Activities: "beach,culture"},
		{Id: 2, Name: "Reykjavik", Country: "Iceland", Climate: core.ClimateCold},
	}
	pkgs := []*core.Package{
		{Id: 10, DestinationId: 1, Name: "Lisbon Getaway", Budget: core.BudgetMedium, Nights: 6, Price: &price, Vector: []float32{0.6, 0.8}},
		{Id: 11, DestinationId: 2, Name: "Northern Lights", Budget: core.BudgetHigh, Nights: 4},
	}

	require.NoError(t, cat.PutDestinations(ctx, dests...))
	require.NoError(t, cat.PutPackages(ctx, pkgs...))

	gotDests, err := cat.Destinations(ctx)
	require.NoError(t, err)
	require.Len(t, gotDests, 2)

	gotPkgs, err := cat.Packages(ctx)
	require.NoError(t, err)
	require.Len(t, gotPkgs, 2)

	byID := map[core.ID]*core.Package{}
	for _, pkg := range gotPkgs {
		byID[pkg.Id] = pkg
	}
	require.Contains(t, byID, core.ID(10))
	require.NotNil(t, byID[10].Price)
	assert.Equal(t, 500.0, *byID[10].Price)
	assert.Len(t, byID[10].Vector, 2)
	assert.Nil(t, byID[11].Price)
}

func TestCatalogEmpty(t *testing.T) {
	cat, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer cat.Close()

	ctx := context.Background()

	dests, err := cat.Destinations(ctx)
	require.NoError(t, err)
	assert.Empty(t, dests)

	pkgs, err := cat.Packages(ctx)
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestPutReplacesExisting(t *testing.T) {
	cat, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer cat.Close()

	ctx := context.Background()

	require.NoError(t, cat.PutDestinations(ctx, &core.Destination{Id: 1, Name: "Lisbon"}))
	require.NoError(t, cat.PutDestinations(ctx, &core.Destination{Id: 1, Name: "Lisboa", Country: "Portugal"}))

	dests, err := cat.Destinations(ctx)
	require.NoError(t, err)
	require.Len(t, dests, 1)
	assert.Equal(t, "Lisboa", dests[0].Name)
}

func TestPutRejectsInvalidRecords(t *testing.T) {
	cat, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer cat.Close()

	ctx := context.Background()

	err = cat.PutDestinations(ctx, &core.Destination{Id: 1})
	assert.ErrorIs(t, err, core.ErrInvalidDestination)

	err = cat.PutPackages(ctx, &core.Package{Id: 10})
	assert.ErrorIs(t, err, core.ErrInvalidPackage)
}

func TestFingerprint(t *testing.T) {
	cat, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer cat.Close()

	ctx := context.Background()

	_, err = cat.Fingerprint(ctx, catalog.CollectionDestinations)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	fp := &core.Fingerprint{
		Collection: catalog.CollectionDestinations,
		Sum:        core.IDFromContent("payload"),
		Records:    2,
		ImportedAt: time.Now().UTC(),
	}
	require.NoError(t, cat.PutFingerprint(ctx, fp))

	got, err := cat.Fingerprint(ctx, catalog.CollectionDestinations)
	require.NoError(t, err)
	assert.Equal(t, fp.Sum, got.Sum)
	assert.Equal(t, fp.Records, got.Records)
}
