package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundcamps/internal/core/domain"
)

func TestSequencerClamps(t *testing.T) {
	q := NewSequencer()
	q.Previous()
	assert.Equal(t, domain.StepChooseTrack, q.Current())

	for range domain.Steps {
		q.Next()
	}
	assert.Equal(t, domain.StepBudget, q.Current())
	q.Next()
	assert.Equal(t, domain.StepBudget, q.Current())

	q.Previous()
	assert.Equal(t, domain.StepAdCreation, q.Current())
}

func TestSequencerSetStepOnlyToReachedSteps(t *testing.T) {
	q := NewSequencer()
	require.ErrorIs(t, q.SetStep(domain.StepBudget), domain.ErrStepNotReached)
	require.ErrorIs(t, q.EnterSubscriptionView(), domain.ErrStepNotReached)
	assert.Equal(t, domain.StepChooseTrack, q.Current())

	q.Next()
	q.Next()
	assert.Equal(t, domain.StepAdCreation, q.Reached())
	require.NoError(t, q.SetStep(domain.StepChooseTrack))
	require.NoError(t, q.SetStep(domain.StepAdCreation), "jumping forward to a reached step")
	require.ErrorIs(t, q.SetStep(domain.StepBudget), domain.ErrStepNotReached)
}

func TestSequencerSubscriptionView(t *testing.T) {
	q := NewSequencer()
	for range domain.Steps {
		q.Next()
	}
	require.NoError(t, q.EnterSubscriptionView())
	assert.True(t, q.InSubscriptionView())
	assert.Equal(t, 100, q.Progress().Percent)

	require.ErrorIs(t, q.SetStep(domain.Step("checkout")), domain.ErrUnknownStep)
	assert.Equal(t, domain.StepBudget, q.Current())
	assert.True(t, q.InSubscriptionView(), "unknown step is ignored")

	require.NoError(t, q.SetStep(domain.StepBudget))
	assert.False(t, q.InSubscriptionView())

	require.NoError(t, q.EnterSubscriptionView())
	require.NoError(t, q.SetStep(domain.StepAdCreation))
	assert.False(t, q.InSubscriptionView())
	assert.Equal(t, 67, q.Progress().Percent)
}
