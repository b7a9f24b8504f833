//go:build arm64

package mpmcq

// padSize is the destructive-interference granularity on arm64: Apple
// Silicon and several server ARM cores use 128-byte cache lines, so the
// conservative default is doubled relative to amd64.
const padSize = 128
