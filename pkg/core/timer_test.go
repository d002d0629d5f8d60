package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedStepShouldStep(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	assert.True(t, fs.ShouldStep(), "first tick is immediate")
	now = now.Add(50 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	now = now.Add(60 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
}

func TestFixedStepDisabled(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, time.Duration(0), fs.Step())
	assert.True(t, fs.ShouldStep())
	assert.True(t, fs.ShouldStep())
	require.NoError(t, fs.Wait(context.Background()))
}

func TestFixedStepWaitCanceled(t *testing.T) {
	fs := NewFixedStep(1)
	require.NoError(t, fs.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, fs.Wait(ctx), context.Canceled)
}
