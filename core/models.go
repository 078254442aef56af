package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog entities.
// Catalog sources supply explicit IDs; records without one get a
// content-based ID from IDFromContent.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Budget categories. Budget matching is an exact string comparison, so
// catalog data and preferences should use these values.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// Climate categories.
const (
	ClimateWarm = "warm"
	ClimateCold = "cold"
	ClimateMild = "mild"
)

// KnownBudget reports whether s is a recognized budget category.
func KnownBudget(s string) bool {
	return s == BudgetLow || s == BudgetMedium || s == BudgetHigh
}

// KnownClimate reports whether s is a recognized climate category.
func KnownClimate(s string) bool {
	return s == ClimateWarm || s == ClimateCold || s == ClimateMild
}

// Destination is a place that packages can reference.
// Loaded once per run from a catalog source and never mutated.
type Destination struct {
	Id          ID     `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Climate     string `json:"climate"`
	Activities  string `json:"activities"`
	Description string `json:"description"`
}

// Package is a bookable trip offer tied to a destination.
// Price may be absent in catalog data, hence the pointer.
// Vector is an optional precomputed embedding of the combined
// package+destination text, populated by the ingest pipeline.
type Package struct {
	Id            ID        `json:"id"`
	DestinationId ID        `json:"destination_id"`
	Name          string    `json:"name"`
	Budget        string    `json:"budget"`
	Nights        int       `json:"nights"`
	Price         *float64  `json:"price"`
	Activities    string    `json:"activities"`
	Highlights    string    `json:"highlights"`
	Vector        []float32 `json:"-"`
}

// PriceOrZero returns the package price, or 0 when absent.
// Used for tie-breaking only; absence never affects the fitness score.
func (p *Package) PriceOrZero() float64 {
	if p.Price == nil {
		return 0.0
	}
	return *p.Price
}

// Preference describes what the traveler wants.
// Activities holds normalized lowercase tags. DurationDays of 0 means no
// duration preference. Month is advisory only and never scored.
type Preference struct {
	Budget       string
	Climate      string
	Activities   []string
	DurationDays int
	Month        string
}

// Recommendation is a scored match of a package and its destination.
// Score is finite, non-negative and rounded to two decimals.
type Recommendation struct {
	Score       float64
	Package     *Package
	Destination *Destination
}

// Fingerprint records the identity of an imported catalog collection.
// Sum is a BLAKE2b content ID over the source records, so an importer can
// detect whether the source has changed since the last import.
type Fingerprint struct {
	Collection string
	Sum        ID
	Records    int
	ImportedAt time.Time
}
