package mylog

import "sync"

// Mode selects an AsyncWorker's backpressure policy.
type Mode int

const (
	// ModeSafe blocks producers when the producer buffer is full, giving a
	// hard memory ceiling at the cost of producer latency under overload.
	ModeSafe Mode = iota
	// ModeUnsafe never blocks producers; the producer buffer grows instead,
	// trading unbounded memory for latency.
	ModeUnsafe
)

// AsyncWorker decouples producer throughput from sink latency with a
// double buffer: producers append to one GrowableBuffer while a single
// consumer goroutine drains the other into the flush callback.
type AsyncWorker struct {
	mu           sync.Mutex
	condProducer *sync.Cond
	condConsumer *sync.Cond

	producer *GrowableBuffer
	consumer *GrowableBuffer

	mode    Mode
	flush   func([]byte)
	stopped bool
	done    chan struct{}
}

// NewAsyncWorker creates a worker with both buffers sized per the given
// config and immediately starts its consumer goroutine. flush is invoked
// once per swap with the consumer buffer's readable range; it must not
// retain the slice past its call, since the buffer is reset and reused
// immediately afterward.
func NewAsyncWorker(capacity, threshold, linearGrowth int, mode Mode, flush func([]byte)) *AsyncWorker {
	w := &AsyncWorker{
		producer: NewGrowableBuffer(capacity, threshold, linearGrowth),
		consumer: NewGrowableBuffer(capacity, threshold, linearGrowth),
		mode:     mode,
		flush:    flush,
		done:     make(chan struct{}),
	}
	w.condProducer = sync.NewCond(&w.mu)
	w.condConsumer = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// Push appends p to the producer buffer. In ModeSafe it blocks until there
// is room or the worker is stopping; if it returns because the worker
// stopped, p was not pushed. In ModeUnsafe it never blocks and the producer
// buffer grows to admit p if necessary.
func (w *AsyncWorker) Push(p []byte) {
	w.mu.Lock()
	if w.mode == ModeSafe {
		for len(p) > w.producer.Writable() && !w.stopped {
			w.condProducer.Wait()
		}
		if w.stopped {
			w.mu.Unlock()
			return
		}
	}
	w.producer.Push(p)
	w.mu.Unlock()
	w.condConsumer.Signal()
}

// run is the single consumer goroutine. It waits for the producer buffer to
// hold data, swaps it under the lock, and flushes the swapped-in buffer
// outside the lock so producers are never blocked on sink I/O.
//
// The wait predicate is keyed on the producer buffer rather than the
// consumer buffer: only a swap can make the consumer buffer non-empty, so
// waiting on the consumer buffer (as a literal translation of the source
// design would) can never be woken by anything but this same goroutine's
// own prior swap. Predicating on the producer buffer and performing the
// swap inside this loop removes that hazard without changing any
// externally observable behavior.
func (w *AsyncWorker) run() {
	defer close(w.done)
	for {
		w.mu.Lock()
		for w.producer.IsEmpty() && !w.stopped {
			w.condConsumer.Wait()
		}
		if w.producer.IsEmpty() && w.stopped {
			w.mu.Unlock()
			return
		}
		w.producer.Swap(w.consumer)
		w.condProducer.Signal()
		w.mu.Unlock()

		w.flush(w.consumer.ReadView())
		w.consumer.Reset()

		w.mu.Lock()
		stop := w.stopped && w.producer.IsEmpty()
		w.mu.Unlock()
		if stop {
			return
		}
	}
}

// Stop signals the consumer goroutine to drain any remaining producer
// bytes and exit, then waits for it to do so. Producers blocked in Push
// when Stop is called return without pushing; their records are dropped.
// Records already accepted before Stop was called are flushed.
func (w *AsyncWorker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.stopped = true
	w.mu.Unlock()

	w.condProducer.Broadcast()
	w.condConsumer.Broadcast()
	<-w.done
}
