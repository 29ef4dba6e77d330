package mylog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_SubmitRunsTask(t *testing.T) {
	p := NewWorkerPool(2, 4)
	defer p.Shutdown()

	ran := make(chan struct{})
	f := p.Submit(func() error {
		close(ran)
		return nil
	})

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
	assert.NoError(t, f.Wait())
}

func TestWorkerPool_SubmitPropagatesError(t *testing.T) {
	p := NewWorkerPool(2, 4)
	defer p.Shutdown()

	wantErr := errors.New("boom")
	f := p.Submit(func() error { return wantErr })
	assert.Equal(t, wantErr, f.Wait())
}

func TestWorkerPool_PanicIsRecoveredAsError(t *testing.T) {
	p := NewWorkerPool(2, 4)
	defer p.Shutdown()

	f := p.Submit(func() error { panic("kaboom") })
	err := f.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestWorkerPool_SubmitAfterShutdownFails(t *testing.T) {
	p := NewWorkerPool(2, 4)
	p.Shutdown()

	f := p.Submit(func() error { return nil })
	assert.ErrorIs(t, f.Wait(), ErrPoolClosed)
}

func TestWorkerPool_ShutdownResolvesQueuedTasks(t *testing.T) {
	p := NewWorkerPool(1, 1)

	block := make(chan struct{})
	// Occupy the single worker so the second task sits queued.
	_ = p.Submit(func() error {
		<-block
		return nil
	})
	queued := p.Submit(func() error { return nil })

	shutdownDone := make(chan struct{})
	go func() {
		p.Shutdown()
		close(shutdownDone)
	}()

	assert.ErrorIs(t, queued.Wait(), ErrPoolClosed)

	close(block)
	<-shutdownDone
}

func TestWorkerPool_ShutdownIsIdempotent(t *testing.T) {
	p := NewWorkerPool(2, 4)
	p.Shutdown()
	assert.NotPanics(t, func() { p.Shutdown() })
}

func TestWorkerPool_DefaultsAppliedForNonPositiveBounds(t *testing.T) {
	p := NewWorkerPool(0, 0)
	defer p.Shutdown()
	assert.GreaterOrEqual(t, p.max, p.min)
	assert.Equal(t, int32(2), p.min)
}
