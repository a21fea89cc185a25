// Package logger is the public API of seqlog. Most users only need to
// import this package.
//
// A Logger is immutable after construction — the name, threshold,
// prefix flags, color rules, and sink list are frozen by the Builder
// and never modified. This makes the emit path inherently safe for
// concurrent use without locking.
//
// Each Logger owns one background worker goroutine. An emit call runs
// the level gate synchronously (a single integer comparison) and, when
// the message is admitted, enqueues exactly one task; formatting and
// sink I/O happen later on the worker, strictly in enqueue order and
// one at a time. Callers never block on a slow sink.
//
//	log, err := logger.NewBuilder("api").
//	    WithLevel(logger.DebugLevel).
//	    WithTimestamp(true).
//	    WithLevelName(true).
//	    Build()
//
// Every level offers three forms: eager (Info), lazy (InfoFn, whose
// producer runs on the worker and never runs for filtered-out levels),
// and formatted (Infof).
//
//	log.Info("ready")
//	log.DebugFn(func() string { return expensiveDump() })
//
// The worker queue is bounded. When it fills, a per-level
// OverflowPolicy decides between DropNewest (default, emit stays
// non-blocking), DropOldest, and Block with a timeout; drops are
// counted in Stats. Close cancels whatever is still queued — a task
// already being dispatched finishes, the rest is never written — so
// callers needing durability must not rely on teardown draining.
//
// The package initializes a default Logger (Info threshold, bracketed
// level names, console sink) in init(); the package-level functions
// Info, Error, Debugf, etc. delegate to it.
package logger
