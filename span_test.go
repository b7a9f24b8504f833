package mpmcq_test

// span is a representative 56-byte payload shared by this package's
// tests: two trace-id halves, a span id, a parent id, a start time, a
// duration, and a flags word, expressed as a plain Go struct since
// RingBuffer and MutexQueue are parametric over any trivially copyable T.
type span struct {
	traceIDHigh uint64
	traceIDLow  uint64
	spanID      uint64
	parentID    uint64
	startNs     uint64
	durationNs  uint64
	flags       uint32
}
