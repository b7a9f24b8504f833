package mpmcq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// RingBuffer is a bounded, lock-free, multi-producer multi-consumer queue
// built on Dmitry Vyukov's sequenced-slot algorithm: a fixed array of
// slots, each carrying a "turn" counter, gated by two cache-line-isolated
// cursors advanced with compare-and-swap.
//
// T is constrained only by documentation, not by the type system: it must
// be trivially copyable (a bit-for-bit copy is semantically valid) and of
// a size fixed at construction. RingBuffer never allocates after
// construction and never blocks.
type RingBuffer[T any] struct {
	_        pad
	tail     atomix.Uint64 // next ticket a producer will attempt to claim
	_        pad
	head     atomix.Uint64 // next ticket a consumer will attempt to claim
	_        pad
	buffer   []ringSlot[T]
	mask     uint64
	capacity uint64
}

type ringSlot[T any] struct {
	turn atomix.Uint64
	data T
	_    padShort
}

// NewRingBuffer creates a ring buffer of the given capacity, which must be
// a power of two greater than zero. This is the only fatal error in the
// component: it is a programmer bug, not a runtime condition, so it
// panics rather than returning an error.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity <= 0 {
		panic("mpmcq: capacity must be > 0")
	}
	n := uint64(capacity)
	if n&(n-1) != 0 {
		panic("mpmcq: capacity must be a power of two")
	}

	q := &RingBuffer[T]{
		buffer:   make([]ringSlot[T], n),
		mask:     n - 1,
		capacity: n,
	}
	for i := uint64(0); i < n; i++ {
		q.buffer[i].turn.StoreRelaxed(i)
	}
	return q
}

// TryEnqueue copies value into the next available slot. It returns
// ErrWouldBlock if the ring is observed full, and never blocks. Safe for
// concurrent use by any number of producers and consumers.
func (q *RingBuffer[T]) TryEnqueue(value T) error {
	sw := spin.Wait{}
	for {
		t := q.tail.LoadRelaxed()
		slot := &q.buffer[t&q.mask]
		turn := slot.turn.LoadAcquire()
		diff := int64(turn) - int64(t)

		switch {
		case diff == 0:
			if q.tail.CompareAndSwapRelaxed(t, t+1) {
				slot.data = value
				slot.turn.StoreRelease(t + 1)
				return nil
			}
		case diff < 0:
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// TryDequeue copies the next available payload into out and returns nil.
// It returns ErrWouldBlock if the ring is observed empty, leaving out
// unmodified, and never blocks. Safe for concurrent use by any number of
// producers and consumers.
func (q *RingBuffer[T]) TryDequeue(out *T) error {
	sw := spin.Wait{}
	for {
		t := q.head.LoadRelaxed()
		slot := &q.buffer[t&q.mask]
		turn := slot.turn.LoadAcquire()
		diff := int64(turn) - int64(t+1)

		switch {
		case diff == 0:
			if q.head.CompareAndSwapRelaxed(t, t+1) {
				*out = slot.data
				slot.turn.StoreRelease(t + q.capacity)
				return nil
			}
		case diff < 0:
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// Capacity returns the fixed capacity chosen at construction.
func (q *RingBuffer[T]) Capacity() int {
	return int(q.capacity)
}
