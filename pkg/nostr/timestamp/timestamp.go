// Package timestamp implements the second-precision UNIX timestamp used in
// nostr events.
package timestamp

import (
	"time"
)

// T is a UNIX timestamp of 1 second precision. The wire format fixes it as
// an unsigned 32 bit integer.
type T uint32

// Now returns the current UNIX timestamp of the current second.
func Now() T { return T(time.Now().Unix()) }

// U64 returns the timestamp as a uint64.
func (t T) U64() uint64 { return uint64(t) }

// I64 returns the timestamp as an int64.
func (t T) I64() int64 { return int64(t) }

// Time converts the timestamp into a time.Time.
func (t T) Time() time.Time { return time.Unix(int64(t), 0) }

// FromTime returns a T from a time.Time.
func FromTime(t time.Time) T { return T(t.Unix()) }

// FromUnix converts from a standard int64 unix timestamp.
func FromUnix(t int64) T { return T(t) }
