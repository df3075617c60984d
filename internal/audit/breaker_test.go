package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyPublisher struct {
	failing bool
	calls   int
}

func (p *flakyPublisher) Emit(context.Context, Event) error {
	p.calls++
	if p.failing {
		return errors.New("broker down")
	}
	return nil
}

func TestGuardedPublisherShedsWhileOpen(t *testing.T) {
	inner := &flakyPublisher{failing: true}
	guarded := NewGuardedPublisher(inner, nil)
	ctx := context.Background()

	// Drive the breaker open; errors pass through until then.
	for i := 0; i < 5; i++ {
		require.Error(t, guarded.Emit(ctx, Event{}))
	}
	callsAtOpen := inner.calls

	// Open circuit: most emits are shed without touching the publisher.
	var shed int
	for i := 0; i < 9; i++ {
		if errors.Is(guarded.Emit(ctx, Event{}), ErrCircuitOpen) {
			shed++
		}
	}
	assert.Equal(t, 9, shed)
	assert.Equal(t, callsAtOpen, inner.calls)
}

func TestGuardedPublisherProbesAndRecovers(t *testing.T) {
	inner := &flakyPublisher{failing: true}
	guarded := NewGuardedPublisher(inner, nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.Error(t, guarded.Emit(ctx, Event{}))
	}

	inner.failing = false
	// Probes let successes through until the breaker closes again.
	for i := 0; i < 50; i++ {
		_ = guarded.Emit(ctx, Event{})
	}
	assert.NoError(t, guarded.Emit(ctx, Event{}))
}

func TestGuardedPublisherPassesThroughWhenHealthy(t *testing.T) {
	inner := &flakyPublisher{}
	guarded := NewGuardedPublisher(inner, nil)

	require.NoError(t, guarded.Emit(context.Background(), Event{}))
	assert.Equal(t, 1, inner.calls)
}
