package core

import (
	"errors"
	"testing"
)

func TestValidateDestination(t *testing.T) {
	tests := []struct {
		name    string
		dest    *Destination
		wantErr error
	}{
		{
			name: "valid destination",
			dest: &Destination{
				Id:      1,
				Name:    "Lisbon",
				Country: "Portugal",
				Climate: ClimateWarm,
			},
			wantErr: nil,
		},
		{
			name: "valid destination with minimal fields",
			dest: &Destination{
				Id:   2,
				Name: "Reykjavik",
			},
			wantErr: nil,
		},
		{
			name: "valid destination with unknown climate",
			dest: &Destination{
				Id:      3,
				Name:    "Kyoto",
				Climate: "temperate",
			},
			wantErr: nil,
		},
		{
			name:    "nil destination",
			dest:    nil,
			wantErr: ErrInvalidDestination,
		},
		{
			name: "missing id",
			dest: &Destination{
				Name: "Lisbon",
			},
			wantErr: ErrMissingID,
		},
		{
			name: "empty name",
			dest: &Destination{
				Id: 1,
			},
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDestination(tt.dest)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDestination() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDestination() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidDestination) {
				t.Errorf("ValidateDestination() error = %v, want wrapped %v", err, ErrInvalidDestination)
			}
		})
	}
}

func TestValidatePackage(t *testing.T) {
	price := 500.0

	tests := []struct {
		name    string
		pkg     *Package
		wantErr error
	}{
		{
			name: "valid package",
			pkg: &Package{
				Id:            10,
				DestinationId: 1,
				Name:          "Lisbon Getaway",
				Budget:        BudgetMedium,
				Nights:        6,
				Price:         &price,
			},
			wantErr: nil,
		},
		{
			name: "valid package without price",
			pkg: &Package{
				Id:            11,
				DestinationId: 1,
				Nights:        3,
			},
			wantErr: nil,
		},
		{
			name: "valid package with zero nights",
			pkg: &Package{
				Id:            12,
				DestinationId: 1,
				Nights:        0,
			},
			wantErr: nil,
		},
		{
			name:    "nil package",
			pkg:     nil,
			wantErr: ErrInvalidPackage,
		},
		{
			name: "missing id",
			pkg: &Package{
				DestinationId: 1,
			},
			wantErr: ErrMissingID,
		},
		{
			name: "missing destination reference",
			pkg: &Package{
				Id: 10,
			},
			wantErr: ErrMissingDestinationRef,
		},
		{
			name: "negative nights",
			pkg: &Package{
				Id:            10,
				DestinationId: 1,
				Nights:        -1,
			},
			wantErr: ErrNegativeNights,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackage(tt.pkg)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePackage() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePackage() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidPackage) {
				t.Errorf("ValidatePackage() error = %v, want wrapped %v", err, ErrInvalidPackage)
			}
		})
	}
}

func TestValidatePreference(t *testing.T) {
	tests := []struct {
		name    string
		pref    *Preference
		wantErr error
	}{
		{
			name: "valid preference",
			pref: &Preference{
				Budget:       BudgetMedium,
				Climate:      ClimateWarm,
				Activities:   []string{"beach", "culture"},
				DurationDays: 6,
			},
			wantErr: nil,
		},
		{
			name:    "valid empty preference",
			pref:    &Preference{},
			wantErr: nil,
		},
		{
			name:    "nil preference",
			pref:    nil,
			wantErr: ErrInvalidPreference,
		},
		{
			name: "negative duration",
			pref: &Preference{
				DurationDays: -3,
			},
			wantErr: ErrNegativeDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePreference(tt.pref)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePreference() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePreference() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
