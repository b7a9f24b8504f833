//go:build amd64

package mpmcq

// padSize is the destructive-interference granularity on amd64: 64 bytes
// covers essentially every x86-64 part in production today.
const padSize = 64
