package domain

import "math"

// Range is an inclusive integer estimate.
type Range struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// EstimateReach maps a daily budget to the estimated daily reach. Budgets
// are not clamped here.
func EstimateReach(budget float64) Range {
	return Range{
		Min: int64(math.Floor(budget * 300)),
		Max: int64(math.Floor(budget * 870)),
	}
}

// EstimateFollowers maps a daily budget to estimated new playlist
// followers per day.
func EstimateFollowers(budget float64) Range {
	return Range{
		Min: int64(math.Floor(budget * 3)),
		Max: int64(math.Floor(budget * 6)),
	}
}

// ValidBudget reports whether budget is a finite daily budget within
// [MinBudget, MaxBudget].
func ValidBudget(budget float64) bool {
	return !math.IsNaN(budget) && budget >= MinBudget && budget <= MaxBudget
}

// Estimates bundles both ranges for the preview panel.
type Estimates struct {
	Budget    float64 `json:"budget"`
	Reach     Range   `json:"reach"`
	Followers Range   `json:"followers"`
}

// Estimate computes both ranges for budget.
func Estimate(budget float64) Estimates {
	return Estimates{Budget: budget, Reach: EstimateReach(budget), Followers: EstimateFollowers(budget)}
}
