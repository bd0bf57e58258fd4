package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimates(t *testing.T) {
	assert.Equal(t, Range{Min: 6000, Max: 17400}, EstimateReach(20))
	assert.Equal(t, Range{Min: 60, Max: 120}, EstimateFollowers(20))
	assert.Equal(t, Range{Min: 1500, Max: 4350}, EstimateReach(5))
	assert.Equal(t, Range{Min: 7, Max: 15}, EstimateFollowers(2.5))
}

func TestEstimatesOrderedOverBudgetDomain(t *testing.T) {
	for b := float64(MinBudget); b <= MaxBudget; b += 0.25 {
		r, f := EstimateReach(b), EstimateFollowers(b)
		assert.LessOrEqual(t, r.Min, r.Max, "budget %v", b)
		assert.LessOrEqual(t, f.Min, f.Max, "budget %v", b)
		assert.GreaterOrEqual(t, r.Min, int64(0))
		assert.GreaterOrEqual(t, f.Min, int64(0))
	}
}

func TestEstimatesNotClamped(t *testing.T) {
	assert.Equal(t, Range{}, EstimateReach(0))
	assert.Equal(t, Range{Min: -300, Max: -870}, EstimateReach(-1))
}

func TestValidBudget(t *testing.T) {
	tests := []struct {
		budget float64
		want   bool
	}{
		{MinBudget, true},
		{MaxBudget, true},
		{42.5, true},
		{4.99, false},
		{100.01, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{1e300, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidBudget(tt.budget), "budget %v", tt.budget)
	}
}
