package mylog

import (
	"testing"
)

// TestAsyncWorker_UnsafeModeGrowsUnderSustainedOverload is a qualitative
// stand-in for timing-sensitive scenario coverage: rather than asserting on
// wall-clock latency (flaky in CI), it asserts on the one externally
// observable side effect ModeUnsafe's "never block" guarantee has to have
// when the consumer can't keep up — the producer buffer's capacity grows
// past its initial size instead of Push ever blocking.
func TestAsyncWorker_UnsafeModeGrowsUnderSustainedOverload(t *testing.T) {
	release := make(chan struct{})
	w := NewAsyncWorker(8, 1<<20, 8, ModeUnsafe, func(p []byte) {
		<-release // consumer never drains until the end of the test
	})

	for i := 0; i < 64; i++ {
		w.Push([]byte("0123456789"))
	}

	w.mu.Lock()
	grew := w.producer.Capacity() > 8
	w.mu.Unlock()

	close(release)
	w.Stop()

	if !grew {
		t.Fatal("expected producer buffer to grow past its initial capacity under sustained overload")
	}
}

func BenchmarkAsyncWorker_PushModeSafe(b *testing.B) {
	w := NewAsyncWorker(4096, 1<<20, 4096, ModeSafe, func(p []byte) {})
	defer w.Stop()
	payload := []byte("benchmark record payload\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Push(payload)
	}
}

func BenchmarkAsyncWorker_PushModeUnsafe(b *testing.B) {
	w := NewAsyncWorker(4096, 1<<20, 4096, ModeUnsafe, func(p []byte) {})
	defer w.Stop()
	payload := []byte("benchmark record payload\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Push(payload)
	}
}

func BenchmarkGrowableBuffer_Push(b *testing.B) {
	buf := NewGrowableBuffer(1<<16, 1<<20, 1<<16)
	payload := make([]byte, 128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if buf.Writable() < len(payload) {
			buf.Reset()
		}
		buf.Push(payload)
	}
}
