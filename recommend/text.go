package recommend

import (
	"strconv"
	"strings"

	"github.com/poiesic/wayfarer/core"
)

// NormalizeTags splits comma-separated text into lowercase, trimmed,
// non-empty tags, dropping duplicates while preserving first-seen order.
// Idempotent: normalizing the joined output yields the same tags.
func NormalizeTags(text string) []string {
	parts := strings.Split(text, ",")
	tags := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	return tags
}

// Jaccard computes the Jaccard similarity of two tag lists, treating each as
// a set: intersection size over union size, in [0,1]. Defined as 0.0 when
// both sets are empty. Symmetric.
//
// Kept as a building block for ranking experiments; the heuristic score does
// not currently use it.
func Jaccard(a, b []string) float64 {
	setA := make(map[string]bool, len(a))
	for _, tag := range a {
		setA[tag] = true
	}
	setB := make(map[string]bool, len(b))
	for _, tag := range b {
		setB[tag] = true
	}

	if len(setA) == 0 && len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for tag := range setA {
		if setB[tag] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

// QueryText synthesizes the semantic query string for a preference.
// Absent optional fields render as empty so the format stays fixed.
func QueryText(pref *core.Preference) string {
	duration := ""
	if pref.DurationDays > 0 {
		duration = strconv.Itoa(pref.DurationDays)
	}
	return "budget " + pref.Budget +
		"; climate " + pref.Climate +
		"; activities " + strings.Join(pref.Activities, ", ") +
		"; duration " + duration +
		"; month " + pref.Month
}

// CandidateText synthesizes the descriptive text for a (package, destination)
// pair, space-joining the fields the pre-ranker should see. Missing fields
// contribute empty strings.
func CandidateText(pkg *core.Package, dest *core.Destination) string {
	return strings.Join([]string{
		dest.Name, dest.Country, dest.Climate,
		dest.Activities, dest.Description,
		pkg.Name, pkg.Activities, pkg.Highlights,
	}, " ")
}
