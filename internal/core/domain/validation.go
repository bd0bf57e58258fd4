package domain

var validationMessages = map[Step]string{
	StepChooseTrack:  "Please select a track before proceeding",
	StepStrategyType: "Please select a promotion strategy before proceeding",
	StepAdCreation:   "Please select at least one target country",
	StepBudget:       "Please set a budget of at least $5 and confirm you have reviewed your campaign",
}

// IsStepValid reports whether the wizard may leave step with data.
// Unrecognized steps validate as true; ParseStep keeps them out of the
// HTTP surface.
func IsStepValid(step Step, data *CampaignData) bool {
	switch step {
	case StepChooseTrack:
		return data.SelectedTrackID != nil
	case StepStrategyType:
		return data.StrategyType != ""
	case StepAdCreation:
		return len(data.TargetCountries) > 0
	case StepBudget:
		return data.Budget >= MinBudget && data.ReviewedCampaign
	default:
		return true
	}
}

// ValidationMessage returns the fixed user-facing message for step.
func ValidationMessage(step Step) string {
	return validationMessages[step]
}

// CheckStep wraps IsStepValid into an error carrying the step message.
func CheckStep(step Step, data *CampaignData) error {
	if IsStepValid(step, data) {
		return nil
	}
	return &ValidationError{Step: step, Message: ValidationMessage(step)}
}

// CheckSteps runs CheckStep for every wizard step in order and returns the
// first failure.
func CheckSteps(data *CampaignData) error {
	for _, step := range Steps {
		if err := CheckStep(step, data); err != nil {
			return err
		}
	}
	return nil
}
