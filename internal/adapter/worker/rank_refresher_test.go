package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unipact/internal/core/port"
)

type countingReputation struct {
	port.ReputationUseCase
	calls atomic.Int32
	err   error
}

func (c *countingReputation) RecomputeAll(context.Context, time.Time) (int, error) {
	c.calls.Add(1)
	return 3, c.err
}

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRankRefresherRunsUntilCancelled(t *testing.T) {
	rep := &countingReputation{}
	r := NewRankRefresher(rep, 10*time.Millisecond, quiet())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return rep.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop")
	}
}

func TestRankRefresherKeepsGoingAfterFailure(t *testing.T) {
	rep := &countingReputation{err: errors.New("db down")}
	r := NewRankRefresher(rep, 5*time.Millisecond, quiet())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = r.Run(ctx) }()

	require.Eventually(t, func() bool { return rep.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestRankRefresherDisabled(t *testing.T) {
	rep := &countingReputation{}
	err := NewRankRefresher(rep, 0, quiet()).Run(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, rep.calls.Load())
}
