// Package rotation fixes the time reference for a run and guards against
// starts too close to a window boundary. The base timestamp is captured
// once per run and never re-read mid-run, so a long run stays internally
// consistent.
package rotation

import (
	"fmt"
	"time"
)

// MinModulo is the smallest acceptable rotation window, in seconds.
const MinModulo = 20

// boundaryGap is the minimal distance, in seconds, from the start of a
// window for a run to be considered safe.
const boundaryGap = 10

// BoundaryError reports a run started too close to a window change. It is
// advisory: the operator is expected to retry the whole run after Wait.
type BoundaryError struct {
	Wait int64 // seconds until a start becomes safe
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("too close to window boundary, retry in %ds", e.Wait)
}

// CaptureBase reads the wall clock once and returns UTC unix seconds.
func CaptureBase() int64 { return time.Now().UTC().Unix() }

// Window returns the rotation window base falls into.
func Window(base, modulo int64) int64 { return base / modulo * modulo }

// CheckBoundary fails with *BoundaryError if base is within the first
// boundaryGap seconds of its window. The check applies to the first code of
// a run only - items already in flight are not interrupted by a boundary
// that was safe at acquisition time.
func CheckBoundary(base, modulo int64) error {
	if rem := base % modulo; rem < boundaryGap {
		return &BoundaryError{Wait: boundaryGap - rem}
	}
	return nil
}
