package catalog

import (
	"testing"
	"time"

	"github.com/poiesic/wayfarer/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationRoundTrip(t *testing.T) {
	dest := &core.Destination{
		Id:          1,
		Name:        "Lisbon",
		Country:     "Portugal",
		Climate:     core.ClimateWarm,
		Activities:  "beach,culture,food",
		Description: "Hilly coastal capital with pastel facades.",
	}

	got, err := UnmarshalDestination(MarshalDestination(dest))
	require.NoError(t, err)
	assert.Equal(t, dest, got)
}

func TestPackageRoundTrip(t *testing.T) {
	price := 500.0

	tests := []struct {
		name string
		pkg  *core.Package
	}{
		{
			name: "full package",
			pkg: &core.Package{
				Id:            10,
				DestinationId: 1,
				Name:          "Lisbon Getaway",
				Budget:        core.BudgetMedium,
				Nights:        6,
				Price:         &price,
				Activities:    "beach,culture",
				Highlights:    "Alfama walking tour",
				Vector:        []float32{0.6, 0.8},
			},
		},
		{
			name: "package without price or vector",
			pkg: &core.Package{
				Id:            11,
				DestinationId: 2,
				Name:          "Northern Lights",
				Budget:        core.BudgetHigh,
				Nights:        4,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalPackage(MarshalPackage(tt.pkg))
			require.NoError(t, err)
			assert.Equal(t, tt.pkg.Id, got.Id)
			assert.Equal(t, tt.pkg.DestinationId, got.DestinationId)
			assert.Equal(t, tt.pkg.Name, got.Name)
			assert.Equal(t, tt.pkg.Budget, got.Budget)
			assert.Equal(t, tt.pkg.Nights, got.Nights)
			assert.Equal(t, tt.pkg.Activities, got.Activities)
			assert.Equal(t, tt.pkg.Highlights, got.Highlights)
			if tt.pkg.Price == nil {
				assert.Nil(t, got.Price)
			} else {
				require.NotNil(t, got.Price)
				assert.Equal(t, *tt.pkg.Price, *got.Price)
			}
			assert.Equal(t, len(tt.pkg.Vector), len(got.Vector))
			for i := range tt.pkg.Vector {
				assert.InDelta(t, tt.pkg.Vector[i], got.Vector[i], 1e-6)
			}
		})
	}
}

func TestFingerprintRoundTrip(t *testing.T) {
	fp := &core.Fingerprint{
		Collection: CollectionDestinations,
		Sum:        core.IDFromContent("destinations payload"),
		Records:    12,
		ImportedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	got, err := UnmarshalFingerprint(MarshalFingerprint(fp))
	require.NoError(t, err)
	assert.Equal(t, fp.Collection, got.Collection)
	assert.Equal(t, fp.Sum, got.Sum)
	assert.Equal(t, fp.Records, got.Records)
	assert.True(t, fp.ImportedAt.Equal(got.ImportedAt))
}

func TestUnmarshalTruncatedData(t *testing.T) {
	data := MarshalDestination(&core.Destination{Id: 1, Name: "Lisbon"})

	_, err := UnmarshalDestination(data[:len(data)-1])
	assert.Error(t, err)
}
