package core

import (
	"sync"
	"time"
)

// Entry represents a single admitted log message waiting for the
// logger's worker. The emit path stamps Time from the logger's Clock.
// Exactly one of Message and Lazy is meaningful: when Lazy is non-nil
// the worker invokes it to produce the message, so deferred producers
// never run for filtered-out levels.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Lazy    func() string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool. Time is not stamped here;
// the caller assigns it from whichever Clock it was configured with.
func GetEntry() *Entry {
	return entryPool.Get().(*Entry)
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Lazy = nil
	entryPool.Put(e)
}
