package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStepValid(t *testing.T) {
	trackID := "trk_1"
	tests := []struct {
		name string
		step Step
		data CampaignData
		want bool
	}{
		{"no track", StepChooseTrack, CampaignData{}, false},
		{"track", StepChooseTrack, CampaignData{SelectedTrackID: &trackID}, true},
		{"no strategy", StepStrategyType, CampaignData{}, false},
		{"strategy", StepStrategyType, CampaignData{StrategyType: StrategyDirect}, true},
		{"no countries", StepAdCreation, CampaignData{TargetCountries: []string{}}, false},
		{"countries", StepAdCreation, CampaignData{TargetCountries: []string{"US"}}, true},
		{"budget below minimum", StepBudget, CampaignData{Budget: 4, ReviewedCampaign: true}, false},
		{"budget at minimum", StepBudget, CampaignData{Budget: 5, ReviewedCampaign: true}, true},
		{"not reviewed", StepBudget, CampaignData{Budget: 20}, false},
		{"unknown step fails open", Step("checkout"), CampaignData{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStepValid(tt.step, &tt.data))
		})
	}
}

func TestCheckStep(t *testing.T) {
	require.NoError(t, CheckStep(StepStrategyType, NewCampaignData()))

	err := CheckStep(StepBudget, NewCampaignData())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StepBudget, verr.Step)
	assert.Equal(t, "Please set a budget of at least $5 and confirm you have reviewed your campaign", verr.Error())

	for _, s := range Steps {
		assert.NotEmpty(t, ValidationMessage(s), s)
	}
}

func TestCheckStepsReportsFirstInvalidStep(t *testing.T) {
	data := NewCampaignData()
	data.Budget = 20
	data.ReviewedCampaign = true

	var verr *ValidationError
	require.ErrorAs(t, CheckSteps(data), &verr)
	assert.Equal(t, StepChooseTrack, verr.Step)

	trackID := "trk_1"
	data.SelectedTrackID = &trackID
	require.ErrorAs(t, CheckSteps(data), &verr)
	assert.Equal(t, StepAdCreation, verr.Step)

	data.TargetCountries = []string{"us"}
	require.NoError(t, CheckSteps(data))
}
