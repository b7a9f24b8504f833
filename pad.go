package mpmcq

// pad is cache-line padding used to keep independently-written atomics
// (the enqueue and dequeue cursors) from sharing a cache line. Its size is
// set per architecture in pad_amd64.go / pad_arm64.go / pad_other.go: 64
// bytes covers the destructive-interference granularity of most x86-64
// parts, 128 bytes covers Apple Silicon and other large-line ARM64 cores.
type pad [padSize]byte

// padShort follows a slot's payload so that the 8-byte turn counters of
// neighboring slots sit at least padSize bytes apart, whatever the payload
// size. Correctness never depends on it; it only reduces false sharing
// between neighboring slots under extreme contention.
type padShort [padSize - 8]byte
