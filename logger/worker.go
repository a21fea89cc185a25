package logger

import (
	"time"

	"github.com/seqlog/seqlog/core"
	"github.com/seqlog/seqlog/sink"
)

// enqueue places an entry on the worker queue, applying the level's
// overflow policy when the queue is full. The default policy is
// DropNewest, so emit never blocks unless Block was configured.
func (l *Logger) enqueue(e *core.Entry) {
	select {
	case <-l.closed:
		core.PutEntry(e)
		return
	default:
	}

	switch l.policy[e.Level] {
	case Block:
		select {
		case l.queue <- e:
			return
		default:
		}
		timer := time.NewTimer(l.blockTimeout)
		select {
		case l.queue <- e:
			timer.Stop()
		case <-timer.C:
			// Timed out waiting for space; the entry is lost. Writing
			// it synchronously here would break FIFO ordering.
			l.stats.IncrementBlocked()
			l.stats.IncrementDropped(e.Level)
			core.PutEntry(e)
		case <-l.closed:
			timer.Stop()
			core.PutEntry(e)
		}

	case DropOldest:
		select {
		case l.queue <- e:
			return
		default:
		}
		// Queue full - make room by discarding the oldest entry
		select {
		case old := <-l.queue:
			l.stats.IncrementDropped(old.Level)
			core.PutEntry(old)
		default:
		}
		select {
		case l.queue <- e:
		default:
			// Still full, drop this one
			l.stats.IncrementDropped(e.Level)
			core.PutEntry(e)
		}

	case DropNewest:
		fallthrough
	default:
		select {
		case l.queue <- e:
		default:
			l.stats.IncrementDropped(e.Level)
			core.PutEntry(e)
		}
	}
}

// run is the logger's single worker goroutine. It executes exactly one
// formatting/dispatch task at a time, in FIFO order. On Close it stops
// without draining: entries still queued are discarded.
func (l *Logger) run() {
	defer l.wg.Done()

	for {
		select {
		case <-l.closed:
			return
		case e := <-l.queue:
			// Close may have raced the receive; queued-but-not-started
			// tasks are cancelled, not written.
			select {
			case <-l.closed:
				core.PutEntry(e)
				return
			default:
			}
			l.dispatch(e)
			core.PutEntry(e)
		}
	}
}

// dispatch formats the message once and writes it to every sink in
// configuration order.
func (l *Logger) dispatch(e *core.Entry) {
	msg := e.Message
	if e.Lazy != nil {
		msg = e.Lazy()
	}

	line := l.formatter.Format(e.Time, e.Level, msg)

	rule := l.colors[e.Level]
	for i, s := range l.sinks {
		l.writeSink(s, l.colorSinks[i], line, rule)
	}

	l.stats.IncrementProcessed()
}

// writeSink writes one line to one sink. A failing or panicking sink
// is counted and isolated; the remaining sinks are still written.
func (l *Logger) writeSink(s sink.Sink, cs sink.ColorSink, line string, rule sink.ColorFormatter) {
	defer func() {
		if r := recover(); r != nil {
			l.stats.IncrementSinkFailure()
		}
	}()

	var err error
	if cs != nil && rule != nil {
		err = cs.WriteColored(line, rule)
	} else {
		err = s.Write(line)
	}
	if err != nil {
		l.stats.IncrementSinkFailure()
	}
}
