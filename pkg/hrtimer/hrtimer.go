// Package hrtimer provides monotonic high-resolution timestamps for the
// benchmark harness. The reference point is established once per process
// under a sync.Once guard, so concurrent first calls are safe; every
// subsequent read is a pure monotonic-clock delta.
package hrtimer

import (
	"sync"
	"time"
)

var (
	baseOnce sync.Once
	base     time.Time
)

func calibrate() {
	base = time.Now()
}

// Nanoseconds returns monotonic nanoseconds elapsed since the process-wide
// base. Values are non-decreasing and unaffected by wall-clock changes.
func Nanoseconds() int64 {
	baseOnce.Do(calibrate)
	return int64(time.Since(base))
}

// Elapsed returns the duration between a start timestamp previously
// obtained from Nanoseconds and now.
func Elapsed(start int64) time.Duration {
	return time.Duration(Nanoseconds() - start)
}
