package mpmcq

import "code.hybscloud.com/iox"

// ErrWouldBlock is returned by every non-blocking operation in this module
// when it observes a transient state it cannot act on immediately: a full
// ring or mutex queue on enqueue, an empty one on dequeue. It carries no
// message payload because none of that information is lost: a boolean
// false (full vs. empty is implied by which method returned it) is all
// a caller ever needs to know about a transient would-block condition.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency with
// the rest of the queue stack.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err is the transient full/empty signal.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
