package logger

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/seqlog/seqlog/core"
	"github.com/seqlog/seqlog/sink"
)

// recordSink collects plain writes for assertions
type recordSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *recordSink) Write(msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, msg)
	return nil
}

func (s *recordSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *recordSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// colorRecordSink additionally records color-aware writes
type colorRecordSink struct {
	recordSink
	coloredMu sync.Mutex
	colored   []string
}

func (s *colorRecordSink) WriteColored(msg string, rule sink.ColorFormatter) error {
	s.coloredMu.Lock()
	defer s.coloredMu.Unlock()
	s.colored = append(s.colored, rule(msg))
	return nil
}

func (s *colorRecordSink) coloredSnapshot() []string {
	s.coloredMu.Lock()
	defer s.coloredMu.Unlock()
	out := make([]string, len(s.colored))
	copy(out, s.colored)
	return out
}

// gateSink blocks its first write until released, stalling the worker
type gateSink struct {
	recordSink
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGateSink() *gateSink {
	return &gateSink{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
}

func (s *gateSink) Write(msg string) error {
	s.once.Do(func() {
		s.started <- struct{}{}
	})
	<-s.release
	return s.recordSink.Write(msg)
}

func waitForCount(t *testing.T, count func() int, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if count() >= want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %d writes, got %d", want, count())
}

func TestLogger_LevelGate(t *testing.T) {
	emit := func(l *Logger, level core.Level, msg string) {
		switch level {
		case core.ErrorLevel:
			l.Error(msg)
		case core.WarnLevel:
			l.Warn(msg)
		case core.EventLevel:
			l.Event(msg)
		case core.InfoLevel:
			l.Info(msg)
		case core.DebugLevel:
			l.Debug(msg)
		}
	}

	messages := []core.Level{core.ErrorLevel, core.WarnLevel, core.EventLevel, core.InfoLevel, core.DebugLevel}

	for _, threshold := range []core.Level{core.OffLevel, core.ErrorLevel, core.WarnLevel, core.EventLevel, core.InfoLevel, core.DebugLevel, core.AllLevel} {
		rec := &recordSink{}
		l, err := NewBuilder("gate").
			WithLevel(threshold).
			WithSinks(rec).
			Build()
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}

		wantCount := 0
		for _, m := range messages {
			emit(l, m, m.String())
			if threshold.Admits(m) {
				wantCount++
			}
		}

		if wantCount > 0 {
			waitForCount(t, rec.count, wantCount)
		} else {
			time.Sleep(20 * time.Millisecond)
		}
		l.Close()

		if got := rec.count(); got != wantCount {
			t.Errorf("threshold=%v: %d messages written, want %d (%v)", threshold, got, wantCount, rec.snapshot())
		}
	}
}

func TestLogger_LazyNotInvokedWhenRejected(t *testing.T) {
	rec := &recordSink{}
	l, err := NewBuilder("lazy").
		WithLevel(core.WarnLevel).
		WithSinks(rec).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer l.Close()

	var invoked atomic.Int32
	l.DebugFn(func() string {
		invoked.Add(1)
		return "expensive"
	})
	l.InfoFn(func() string {
		invoked.Add(1)
		return "expensive"
	})

	time.Sleep(20 * time.Millisecond)
	if n := invoked.Load(); n != 0 {
		t.Errorf("Rejected lazy producers were invoked %d times", n)
	}
	if rec.count() != 0 {
		t.Errorf("Rejected messages were written: %v", rec.snapshot())
	}
}

func TestLogger_LazyRunsOnWorker(t *testing.T) {
	rec := &recordSink{}
	l, err := NewBuilder("lazy").
		WithSinks(rec).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer l.Close()

	workerDone := make(chan struct{})
	l.InfoFn(func() string {
		close(workerDone)
		return "produced"
	})

	select {
	case <-workerDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Lazy producer never ran for an admitted message")
	}

	waitForCount(t, rec.count, 1)
	if got := rec.snapshot()[0]; got != "produced" {
		t.Errorf("Lazy message = %q, want %q", got, "produced")
	}
}

func TestLogger_EmptyName(t *testing.T) {
	l, err := NewBuilder("").Build()
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("Build with empty name returned %v, want ErrEmptyName", err)
	}
	if l != nil {
		t.Error("Build with empty name must not construct a Logger")
	}
}

func TestLogger_DefaultSinkSelection(t *testing.T) {
	plain, err := NewBuilder("plain").Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer plain.Close()
	if len(plain.sinks) != 1 {
		t.Fatalf("Expected exactly one default sink, got %d", len(plain.sinks))
	}
	if plain.colorSinks[0] != nil {
		t.Error("Default sink without color rules should be plain")
	}

	colored, err := NewBuilder("colored").
		WithColorFormatter(core.ErrorLevel, sink.Red).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer colored.Close()
	if len(colored.sinks) != 1 {
		t.Fatalf("Expected exactly one default sink, got %d", len(colored.sinks))
	}
	if colored.colorSinks[0] == nil {
		t.Error("Default sink with color rules should be color-capable")
	}
}

func TestLogger_Ordering(t *testing.T) {
	rec := &recordSink{}
	l, err := NewBuilder("order").
		WithLevel(core.DebugLevel).
		WithSinks(rec).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	l.Info("m1")
	l.Debug("m2")
	l.Error("m3")

	waitForCount(t, rec.count, 3)
	l.Close()

	got := rec.snapshot()
	want := []string{"m1", "m2", "m3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Out of order at %d: got %v, want %v", i, got, want)
		}
	}
}

// taggedSink writes into a shared recorder so the per-message sink
// order is observable
type taggedSink struct {
	tag string
	rec *recordSink
}

func (s *taggedSink) Write(msg string) error {
	return s.rec.Write(s.tag + ":" + msg)
}

func TestLogger_FanOut(t *testing.T) {
	shared := &recordSink{}
	a := &taggedSink{tag: "a", rec: shared}
	b := &taggedSink{tag: "b", rec: shared}

	l, err := NewBuilder("fanout").
		WithSinks(a, b).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	l.Info("m1")
	l.Info("m2")

	waitForCount(t, shared.count, 4)
	l.Close()

	got := shared.snapshot()
	want := []string{"a:m1", "b:m1", "a:m2", "b:m2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Fan-out order wrong: got %v, want %v", got, want)
		}
	}
}

func TestLogger_ColorRouting(t *testing.T) {
	colored := &colorRecordSink{}
	plain := &recordSink{}

	l, err := NewBuilder("color").
		WithLevel(core.DebugLevel).
		WithColorFormatter(core.ErrorLevel, sink.Red).
		WithSinks(colored, plain).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Registered rule for Error: color-capable sink gets the colored
	// write, plain sink gets the plain one
	l.Error("boom")
	// No rule for Debug: everyone gets the plain write
	l.Debug("quiet")

	waitForCount(t, plain.count, 2)
	l.Close()

	coloredLines := colored.coloredSnapshot()
	if len(coloredLines) != 1 || coloredLines[0] != sink.Red("boom") {
		t.Errorf("Colored writes = %v, want exactly [%q]", coloredLines, sink.Red("boom"))
	}
	if got := colored.snapshot(); len(got) != 1 || got[0] != "quiet" {
		t.Errorf("Plain writes on color sink = %v, want [\"quiet\"]", got)
	}
	if got := plain.snapshot(); len(got) != 2 || got[0] != "boom" || got[1] != "quiet" {
		t.Errorf("Plain sink saw %v, want [\"boom\" \"quiet\"]", got)
	}
}

// failSink always fails its writes
type failSink struct {
	err     error
	explode bool
}

func (s *failSink) Write(string) error {
	if s.explode {
		panic("sink exploded")
	}
	return s.err
}

func TestLogger_SinkFailureIsolation(t *testing.T) {
	broken := &failSink{err: errors.New("disk full")}
	angry := &failSink{explode: true}
	rec := &recordSink{}

	l, err := NewBuilder("isolate").
		WithSinks(broken, angry, rec).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	l.Info("survives")

	waitForCount(t, rec.count, 1)
	l.Close()

	if got := rec.snapshot()[0]; got != "survives" {
		t.Errorf("Healthy sink saw %q, want %q", got, "survives")
	}

	stats := l.Stats()
	if stats.SinkFailures != 2 {
		t.Errorf("SinkFailures = %d, want 2", stats.SinkFailures)
	}
	if stats.ProcessedTotal != 1 {
		t.Errorf("ProcessedTotal = %d, want 1", stats.ProcessedTotal)
	}
}

func TestLogger_TeardownCancelsQueued(t *testing.T) {
	gs := newGateSink()
	l, err := NewBuilder("teardown").
		WithSinks(gs).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// First message occupies the worker inside the sink write
	l.Info("m1")
	<-gs.started

	// These are queued behind the in-flight task
	l.Info("m2")
	l.Info("m3")

	closed := make(chan struct{})
	go func() {
		l.Close()
		close(closed)
	}()

	// Close is waiting on the in-flight task; let it finish
	time.Sleep(20 * time.Millisecond)
	close(gs.release)

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return after the in-flight task finished")
	}

	got := gs.snapshot()
	if len(got) != 1 || got[0] != "m1" {
		t.Errorf("After teardown sinks saw %v, want only [\"m1\"]", got)
	}
}

func TestLogger_EmitAfterClose(t *testing.T) {
	rec := &recordSink{}
	l, err := NewBuilder("closed").
		WithSinks(rec).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	l.Close()
	l.Info("too late")
	l.InfoFn(func() string { return "too late" })

	time.Sleep(20 * time.Millisecond)
	if rec.count() != 0 {
		t.Errorf("Messages written after Close: %v", rec.snapshot())
	}

	if err := l.Close(); err != nil {
		t.Errorf("Second Close returned %v", err)
	}
}

func TestLogger_CoarseClock(t *testing.T) {
	rec := &recordSink{}
	l, err := NewBuilder("coarse").
		WithCoarseClock(true).
		WithTimestamp(true).
		WithSinks(rec).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	l.Info("tick")
	waitForCount(t, rec.count, 1)
	l.Close()

	// The line carries a bracketed timestamp rendered from the coarse clock
	got := rec.snapshot()[0]
	if len(got) == 0 || got[0] != '[' {
		t.Errorf("Expected a bracketed timestamp prefix, got %q", got)
	}
}

func TestLogger_ConcurrentEmit(t *testing.T) {
	rec := &recordSink{}
	l, err := NewBuilder("concurrent").
		WithQueueSize(4096).
		WithSinks(rec).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	const goroutines = 8
	const perGoroutine = 100

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				l.Info("msg")
			}
		}()
	}
	wg.Wait()

	waitForCount(t, rec.count, goroutines*perGoroutine)
	l.Close()

	if got := rec.count(); got != goroutines*perGoroutine {
		t.Errorf("Wrote %d messages, want %d", got, goroutines*perGoroutine)
	}
}
