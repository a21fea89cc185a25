package sink

import (
	"io"
	"os"
	"sync"
)

// ConsoleSink writes each line, newline-terminated, to an io.Writer
// (stdout by default). Writes are serialized with a mutex so the sink
// can be shared across loggers.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink creates a console sink writing to stdout
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{w: os.Stdout}
}

// NewWriterSink creates a console sink writing to a custom writer
func NewWriterSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

// Write delivers one formatted log line
func (s *ConsoleSink) Write(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, message)
	if err != nil {
		return err
	}
	_, err = s.w.Write(newline)
	return err
}

var newline = []byte{'\n'}

// ColorConsoleSink is a console sink that additionally accepts a color
// rule. The rule is applied to the whole line before writing.
type ColorConsoleSink struct {
	ConsoleSink
}

// NewColorConsoleSink creates a color-capable console sink writing to stdout
func NewColorConsoleSink() *ColorConsoleSink {
	return &ColorConsoleSink{ConsoleSink{w: os.Stdout}}
}

// NewColorWriterSink creates a color-capable console sink writing to a
// custom writer
func NewColorWriterSink(w io.Writer) *ColorConsoleSink {
	return &ColorConsoleSink{ConsoleSink{w: w}}
}

// WriteColored delivers one formatted log line styled by the rule
func (s *ColorConsoleSink) WriteColored(message string, rule ColorFormatter) error {
	return s.Write(rule(message))
}
