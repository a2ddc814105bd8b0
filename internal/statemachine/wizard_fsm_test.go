package statemachine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardFSM_WalksAllSteps(t *testing.T) {
	ctx := context.Background()
	w, err := NewWizardFSM(StepBasicInfo)
	require.NoError(t, err)

	var visited []string
	validate := func(step string) error {
		visited = append(visited, step)
		return nil
	}

	for i := 1; i < len(WizardSteps); i++ {
		require.NoError(t, w.Next(ctx, validate))
		assert.Equal(t, WizardSteps[i], w.Current())
		assert.Equal(t, i, w.Index())
	}
	assert.True(t, w.IsLast())
	assert.Equal(t, WizardSteps[:len(WizardSteps)-1], visited)

	// clamped at the last step
	require.NoError(t, w.Next(ctx, validate))
	assert.Equal(t, StepReview, w.Current())

	for i := len(WizardSteps) - 2; i >= 0; i-- {
		require.NoError(t, w.Prev(ctx))
		assert.Equal(t, WizardSteps[i], w.Current())
	}
	// clamped at the first step
	require.NoError(t, w.Prev(ctx))
	assert.Equal(t, StepBasicInfo, w.Current())
}

func TestWizardFSM_ValidationBlocksNext(t *testing.T) {
	w, err := NewWizardFSM(StepBasicInfo)
	require.NoError(t, err)

	blocked := errors.New("Please fill all required fields")
	err = w.Next(context.Background(), func(string) error { return blocked })
	assert.Equal(t, blocked, err)
	assert.Equal(t, StepBasicInfo, w.Current())
}

func TestWizardFSM_UnknownStep(t *testing.T) {
	_, err := NewWizardFSM("Payment")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, -1, StepIndex("Payment"))
}
