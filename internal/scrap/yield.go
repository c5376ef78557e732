package scrap

import (
	"math"

	"item-tagger/internal/record"
)

// Recompute scales a recipe's component list by the policy. Entries are
// skipped when the count is not positive, the link does not resolve to a
// component, the component is excluded, or the rounded count is not
// positive. It returns nil when no entry survives.
func Recompute(list []record.ComponentCount, policy Policy, view record.View) []record.ComponentCount {
	var result []record.ComponentCount

	for _, entry := range list {
		if count, ok := recomputeEntry(entry, policy, view); ok {
			result = append(result, record.ComponentCount{Component: entry.Component, Count: count})
		}
	}

	return result
}

func recomputeEntry(entry record.ComponentCount, policy Policy, view record.View) (int, bool) {
	if entry.Count <= 0 {
		return 0, false
	}

	if _, ok := record.ResolveKind(view, entry.Component, record.KindComponent); !ok {
		return 0, false
	}

	if policy.IsExcluded(entry.Component) {
		return 0, false
	}

	scaled := policy.Round.Round(policy.LossFactor * float64(entry.Count))
	if scaled <= 0 || math.IsNaN(scaled) {
		return 0, false
	}

	if scaled > math.MaxInt32 {
		scaled = math.MaxInt32
	}

	return int(scaled), true
}
