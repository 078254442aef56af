package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "Lisbon|Portugal",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "A much longer catalog record summary that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("Lisbon|Portugal")
	id2 := IDFromContent("Reykjavik|Iceland")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestPackage_PriceOrZero(t *testing.T) {
	price := 499.0

	tests := []struct {
		name string
		pkg  Package
		want float64
	}{
		{
			name: "price present",
			pkg:  Package{Price: &price},
			want: 499.0,
		},
		{
			name: "price absent",
			pkg:  Package{},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pkg.PriceOrZero(); got != tt.want {
				t.Errorf("PriceOrZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKnownCategories(t *testing.T) {
	for _, b := range []string{BudgetLow, BudgetMedium, BudgetHigh} {
		if !KnownBudget(b) {
			t.Errorf("KnownBudget(%q) = false, want true", b)
		}
	}
	if KnownBudget("luxury") {
		t.Errorf("KnownBudget(\"luxury\") = true, want false")
	}

	for _, c := range []string{ClimateWarm, ClimateCold, ClimateMild} {
		if !KnownClimate(c) {
			t.Errorf("KnownClimate(%q) = false, want true", c)
		}
	}
	if KnownClimate("tropical") {
		t.Errorf("KnownClimate(\"tropical\") = true, want false")
	}
}
