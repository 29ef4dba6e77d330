package mylog

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncWorker_FlushesPushedBytes(t *testing.T) {
	var mu sync.Mutex
	var got []byte

	w := NewAsyncWorker(64, 1<<20, 4096, ModeSafe, func(p []byte) {
		mu.Lock()
		got = append(got, p...)
		mu.Unlock()
	})
	defer w.Stop()

	w.Push([]byte("hello "))
	w.Push([]byte("world"))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return bytes.Equal(got, []byte("hello world"))
	}, time.Second, time.Millisecond)
}

func TestAsyncWorker_StopDrainsRemainingBytes(t *testing.T) {
	var flushed atomic.Int64

	w := NewAsyncWorker(64, 1<<20, 4096, ModeSafe, func(p []byte) {
		flushed.Add(int64(len(p)))
	})
	w.Push([]byte("12345"))
	w.Stop()

	assert.Equal(t, int64(5), flushed.Load())
}

func TestAsyncWorker_StopIsIdempotent(t *testing.T) {
	w := NewAsyncWorker(64, 1<<20, 4096, ModeSafe, func(p []byte) {})
	w.Stop()
	assert.NotPanics(t, func() { w.Stop() })
}

func TestAsyncWorker_SafeModeBlocksProducerUntilDrained(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)

	w := NewAsyncWorker(4, 1<<20, 4, ModeSafe, func(p []byte) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
	})
	defer func() {
		close(release)
		w.Stop()
	}()

	w.Push([]byte("abcd")) // fills the 4-byte producer buffer exactly
	<-started               // consumer has swapped it in and is blocked in flush
	w.Push([]byte("efgh")) // refills the swapped-in, empty producer buffer

	pushed := make(chan struct{})
	go func() {
		w.Push([]byte("more")) // should block: producer buffer still full, consumer busy
		close(pushed)
	}()

	select {
	case <-pushed:
		t.Fatal("Push returned while ModeSafe buffer should still be full")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAsyncWorker_UnsafeModeNeverBlocksProducer(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)

	w := NewAsyncWorker(4, 1<<20, 4, ModeUnsafe, func(p []byte) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
	})

	w.Push([]byte("abcd"))
	<-started

	done := make(chan struct{})
	go func() {
		w.Push([]byte("this push must not block even though the consumer is busy"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ModeUnsafe Push blocked")
	}

	close(release)
	w.Stop()
}
