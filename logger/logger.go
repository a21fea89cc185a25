package logger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/seqlog/seqlog/core"
	"github.com/seqlog/seqlog/formatter"
	"github.com/seqlog/seqlog/sink"
)

// ErrEmptyName is returned by Build when no logger name was given.
var ErrEmptyName = errors.New("logger: name must not be empty")

// Logger is the main logging interface (immutable after Build).
//
// Every Logger owns one background worker goroutine that formats and
// dispatches admitted messages strictly in enqueue order, one at a
// time. Emit calls never block on formatting or sink I/O.
type Logger struct {
	name      string
	level     core.Level
	formatter *formatter.TextFormatter
	colors    map[core.Level]sink.ColorFormatter
	sinks     []sink.Sink
	// colorSinks runs parallel to sinks; nil where the sink lacks the
	// color capability. Decided once here, never per message.
	colorSinks   []sink.ColorSink
	policy       map[core.Level]OverflowPolicy
	blockTimeout time.Duration
	clock        core.Clock

	queue     chan *core.Entry
	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
	stats     *Stats
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name         string
	level        core.Level
	fmtCfg       formatter.Config
	colors       map[core.Level]sink.ColorFormatter
	sinks        []sink.Sink
	queueSize    int
	policy       map[core.Level]OverflowPolicy
	blockTimeout time.Duration
	coarseClock  bool
}

// NewBuilder creates a new logger builder. The name identifies the
// logger's worker and must not be empty.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:         name,
		level:        core.InfoLevel, // Default threshold
		queueSize:    1024,
		blockTimeout: 100 * time.Millisecond,
	}
}

// WithLevel sets the verbosity threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithTimestamp enables the timestamp prefix on each line
func (b *Builder) WithTimestamp(enabled bool) *Builder {
	b.fmtCfg.PrintTimestamp = enabled
	return b
}

// WithLevelName enables the bracketed level-name prefix on each line
func (b *Builder) WithLevelName(enabled bool) *Builder {
	b.fmtCfg.PrintLevel = enabled
	return b
}

// WithTimestampFormatter sets the timestamp renderer (nil keeps the
// default millisecond-precision local-time pattern)
func (b *Builder) WithTimestampFormatter(f formatter.TimestampFormatter) *Builder {
	b.fmtCfg.TimestampFormatter = f
	return b
}

// WithColorFormatter registers a color rule for one level
func (b *Builder) WithColorFormatter(level core.Level, rule sink.ColorFormatter) *Builder {
	if b.colors == nil {
		b.colors = make(map[core.Level]sink.ColorFormatter)
	}
	b.colors[level] = rule
	return b
}

// WithColorFormatters registers color rules for several levels at once
func (b *Builder) WithColorFormatters(rules map[core.Level]sink.ColorFormatter) *Builder {
	for level, rule := range rules {
		b.WithColorFormatter(level, rule)
	}
	return b
}

// WithSinks appends sinks; messages are dispatched to all sinks in the
// order they were added
func (b *Builder) WithSinks(sinks ...sink.Sink) *Builder {
	b.sinks = append(b.sinks, sinks...)
	return b
}

// WithQueueSize sets the worker queue capacity
func (b *Builder) WithQueueSize(n int) *Builder {
	b.queueSize = n
	return b
}

// WithOverflowPolicy sets the overflow policy for one level
func (b *Builder) WithOverflowPolicy(level core.Level, policy OverflowPolicy) *Builder {
	if b.policy == nil {
		b.policy = make(map[core.Level]OverflowPolicy)
	}
	b.policy[level] = policy
	return b
}

// WithBlockTimeout sets the timeout used by the Block overflow policy
func (b *Builder) WithBlockTimeout(d time.Duration) *Builder {
	b.blockTimeout = d
	return b
}

// WithCoarseClock makes the emit path stamp entries from the shared
// coarse clock instead of calling time.Now() per message. Timestamps
// are then accurate to roughly half a millisecond.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build validates the configuration, freezes it, and starts the
// logger's worker. When no sinks were added, a single console sink is
// selected: color-capable if any color rule is registered, plain
// otherwise.
func (b *Builder) Build() (*Logger, error) {
	if b.name == "" {
		return nil, ErrEmptyName
	}

	colors := make(map[core.Level]sink.ColorFormatter, len(b.colors))
	for level, rule := range b.colors {
		colors[level] = rule
	}

	sinks := make([]sink.Sink, len(b.sinks))
	copy(sinks, b.sinks)
	if len(sinks) == 0 {
		if len(colors) > 0 {
			sinks = append(sinks, sink.NewColorConsoleSink())
		} else {
			sinks = append(sinks, sink.NewConsoleSink())
		}
	}

	// Decide each sink's color capability once, at registration
	colorSinks := make([]sink.ColorSink, len(sinks))
	for i, s := range sinks {
		colorSinks[i], _ = s.(sink.ColorSink)
	}

	policy := make(map[core.Level]OverflowPolicy, len(b.policy))
	for level, p := range b.policy {
		policy[level] = p
	}

	queueSize := b.queueSize
	if queueSize <= 0 {
		queueSize = 1024
	}

	clock := core.Clock(time.Now)
	if b.coarseClock {
		clock = core.CoarseClock()
	}

	l := &Logger{
		name:         b.name,
		level:        b.level,
		formatter:    formatter.NewTextFormatter(b.fmtCfg),
		colors:       colors,
		sinks:        sinks,
		colorSinks:   colorSinks,
		policy:       policy,
		blockTimeout: b.blockTimeout,
		clock:        clock,
		queue:        make(chan *core.Entry, queueSize),
		closed:       make(chan struct{}),
		stats:        NewStats(),
	}

	l.wg.Add(1)
	go l.run()

	return l, nil
}

// Name returns the logger's name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the logger's verbosity threshold
func (l *Logger) Level() core.Level {
	return l.level
}

// Stats returns a snapshot of the logger's counters
func (l *Logger) Stats() Snapshot {
	return l.stats.Snapshot()
}

// Log logs a message at the given level. Levels that are not valid
// message levels (OffLevel, AllLevel) are ignored.
func (l *Logger) Log(level core.Level, msg string) {
	if !level.Message() || !l.level.Admits(level) {
		return
	}
	l.log(level, msg, nil)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if !l.level.Admits(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, nil)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if !l.level.Admits(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg, nil)
}

// Event logs an application event message
func (l *Logger) Event(msg string) {
	if !l.level.Admits(core.EventLevel) {
		return
	}
	l.log(core.EventLevel, msg, nil)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if !l.level.Admits(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, nil)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if !l.level.Admits(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, nil)
}

// ErrorFn logs an error message produced lazily. The producer runs on
// the worker, and never runs at all when the level is filtered out.
func (l *Logger) ErrorFn(fn func() string) {
	if !l.level.Admits(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, "", fn)
}

// WarnFn logs a warning message produced lazily
func (l *Logger) WarnFn(fn func() string) {
	if !l.level.Admits(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, "", fn)
}

// EventFn logs an application event message produced lazily
func (l *Logger) EventFn(fn func() string) {
	if !l.level.Admits(core.EventLevel) {
		return
	}
	l.log(core.EventLevel, "", fn)
}

// InfoFn logs an info message produced lazily
func (l *Logger) InfoFn(fn func() string) {
	if !l.level.Admits(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, "", fn)
}

// DebugFn logs a debug message produced lazily
func (l *Logger) DebugFn(fn func() string) {
	if !l.level.Admits(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, "", fn)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.level.Admits(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.level.Admits(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Eventf logs an application event message with formatting
func (l *Logger) Eventf(format string, args ...interface{}) {
	if !l.level.Admits(core.EventLevel) {
		return
	}
	l.log(core.EventLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.level.Admits(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.level.Admits(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// log builds the pooled entry for an admitted message and hands it to
// the worker queue. The level gate has already passed.
func (l *Logger) log(level core.Level, msg string, lazy func() string) {
	l.logAt(level, l.clock(), msg, lazy)
}

// logAt is the emit tail for callers that already hold a timestamp,
// such as the slog adapter replaying record times.
func (l *Logger) logAt(level core.Level, t time.Time, msg string, lazy func() string) {
	e := core.GetEntry()
	e.Time = t
	e.Level = level
	e.Message = msg
	e.Lazy = lazy
	l.enqueue(e)
}

// Close stops the worker. A task already being dispatched finishes;
// everything still queued is discarded, never written. Close is
// idempotent, and emits after Close are silent no-ops.
func (l *Logger) Close() error {
	l.closeOnce.Do(func() {
		close(l.closed)
		l.wg.Wait()
	})
	return nil
}
