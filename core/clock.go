package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies the wall time stamped on an Entry at emit time. The
// logger picks one at construction: time.Now by default, or the shared
// coarse clock when sub-millisecond accuracy is worth trading for a
// cheaper emit path.
type Clock func() time.Time

// coarseResolution is how often the shared coarse clock refreshes its
// cached reading.
const coarseResolution = 500 * time.Microsecond

var (
	coarseOnce  sync.Once
	coarseNanos atomic.Int64
)

// CoarseClock returns a Clock that reads a cached timestamp instead of
// calling time.Now() per message. The cache is refreshed every 500µs
// by a background goroutine started on first use; the goroutine runs
// for the lifetime of the process, which is intentional because
// logging typically spans the entire application lifecycle.
func CoarseClock() Clock {
	coarseOnce.Do(func() {
		coarseNanos.Store(time.Now().UnixNano())
		go func() {
			ticker := time.NewTicker(coarseResolution)
			for range ticker.C {
				coarseNanos.Store(time.Now().UnixNano())
			}
		}()
	})
	return func() time.Time {
		return time.Unix(0, coarseNanos.Load())
	}
}
