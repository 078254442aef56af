package recommend

import "github.com/poiesic/wayfarer/core"

// Scoring weights. Each contribution is independent and non-negative, so the
// total is always finite and >= 0.
const (
	budgetMatchBonus  = 2.0
	climateMatchBonus = 2.0

	// Activity overlap contributes activityTagBonus per overlapping tag,
	// capped at activityOverlapCap tags.
	activityTagBonus   = 1.0
	activityOverlapCap = 3

	// Duration closeness starts at durationBonusMax for an exact match and
	// decays linearly, reaching zero at a difference of five days.
	durationBonusMax    = 1.5
	durationDecayPerDay = 0.3
)

// Score computes the heuristic fitness of a package for a preference.
// Deterministic: identical inputs always produce identical output.
//
// The preference's travel month is deliberately not scored; it only feeds
// the semantic query text.
func Score(pref *core.Preference, pkg *core.Package, dest *core.Destination) float64 {
	score := 0.0

	if pkg.Budget == pref.Budget {
		score += budgetMatchBonus
	}

	if dest.Climate == pref.Climate {
		score += climateMatchBonus
	}

	// Package tags win; destination tags are the fallback.
	tagSource := pkg.Activities
	if tagSource == "" {
		tagSource = dest.Activities
	}
	tags := NormalizeTags(tagSource)

	wanted := make(map[string]bool, len(pref.Activities))
	for _, tag := range pref.Activities {
		wanted[tag] = true
	}
	overlap := 0
	for _, tag := range tags {
		if wanted[tag] {
			overlap++
		}
	}
	if overlap > activityOverlapCap {
		overlap = activityOverlapCap
	}
	score += float64(overlap) * activityTagBonus

	if pref.DurationDays > 0 && pkg.Nights > 0 {
		diff := pkg.Nights - pref.DurationDays
		if diff < 0 {
			diff = -diff
		}
		closeness := durationBonusMax - durationDecayPerDay*float64(diff)
		if closeness > 0 {
			score += closeness
		}
	}

	return score
}
