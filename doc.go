// Package mpmcq provides bounded FIFO queues for transferring fixed-size
// payloads between concurrent producers and consumers.
//
// Two interchangeable implementations share the same non-blocking surface
// (TryEnqueue / TryDequeue):
//
//   - RingBuffer[T]: a lock-free multi-producer multi-consumer ring, built
//     on Dmitry Vyukov's sequenced-slot algorithm. Every attempt either
//     commits or observes full/empty; there is no blocking and no syscall
//     on the fast path.
//   - MutexQueue[T]: a single-mutex bounded FIFO used as a correctness and
//     performance baseline for RingBuffer. BlockingQueue[T] wraps the same
//     design with condition-variable waits for callers that want to block
//     instead of retrying.
//
// # Basic usage
//
//	q := mpmcq.NewRingBuffer[int](1024)
//
//	if err := q.TryEnqueue(42); err != nil {
//	    // queue is full, handle backpressure
//	}
//
//	var v int
//	if err := q.TryDequeue(&v); err != nil {
//	    // queue is empty, try again later
//	}
//
// # Error handling
//
// Both queue types return [ErrWouldBlock] when an operation cannot proceed
// immediately. It is a transient state observation, not a failure — the
// retry policy belongs to the caller:
//
//	sw := spin.Wait{}
//	for q.TryEnqueue(item) != nil {
//	    sw.Once()
//	}
//
// # Capacity
//
// RingBuffer requires a power-of-two capacity and panics otherwise; this
// is the only fatal error in the package, and it is a programmer bug, not
// a runtime condition. MutexQueue and BlockingQueue accept any positive
// capacity.
//
// # Thread safety
//
// RingBuffer and MutexQueue support any number of concurrent producers and
// consumers. BlockingQueue shares the same constraint. Destroying a queue
// while any goroutine still holds a reference to it is the caller's
// responsibility to prevent — join every producer and consumer first.
package mpmcq
