package domain

import "slices"

// Plan is a subscription offered after the campaign is configured.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MonthlyPrice float64  `json:"monthlyPrice"`
	AnnualPrice  float64  `json:"annualPrice"`
	Features     []string `json:"features"`
	Popular      bool     `json:"popular"`
}

// Price returns the amount billed per period.
func (p Plan) Price(annual bool) float64 {
	if annual {
		return p.AnnualPrice
	}
	return p.MonthlyPrice
}

// Plans is the subscription catalog.
var Plans = []Plan{
	{
		ID:           "starter",
		Name:         "Lite",
		Description:  "Perfect for new artists just getting started",
		MonthlyPrice: 19.99,
		AnnualPrice:  191.9,
		Features: []string{
			"AI-Powered Meta Ads Management",
			"2x AI-Powered Ad Creatives",
			"Analytics & Insights",
			"Standard Support",
		},
	},
	{
		ID:           "pro",
		Name:         "Pro",
		Description:  "For growing artists ready to expand their audience",
		MonthlyPrice: 49.99,
		AnnualPrice:  479.9,
		Features: []string{
			"AI-Powered Meta Ads Management",
			"10x AI-Powered Ad Creatives",
			"Advanced Analytics & Insights",
			"Priority Support",
		},
		Popular: true,
	},
	{
		ID:           "premium",
		Name:         "Premium",
		Description:  "For established artists looking to maximize impact",
		MonthlyPrice: 99.99,
		AnnualPrice:  959.9,
		Features: []string{
			"AI-Powered Meta Ads Management",
			"30x AI-Powered Ad Creatives",
			"Advanced Analytics & Insights",
			"24/7 Dedicated Support",
		},
	},
}

// FindPlan looks a plan up by id.
func FindPlan(id string) (Plan, bool) {
	i := slices.IndexFunc(Plans, func(p Plan) bool { return p.ID == id })
	if i < 0 {
		return Plan{}, false
	}
	return Plans[i], true
}
