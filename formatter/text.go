package formatter

import (
	"time"

	"github.com/seqlog/seqlog/core"
)

// TextFormatter assembles the final log line from a message, its level
// and the configured prefix flags. Assembly is deterministic:
//
//	neither flag:  "message"
//	level only:    "[Level] message"
//	time only:     "[timestamp] message"
//	both flags:    "timestamp [Level] message"
//
// When both prefixes are enabled only the level is bracketed. The
// asymmetry against the time-only case is a compatibility contract and
// must not be "fixed".
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormatter == nil {
		cfg.TimestampFormatter = func(t time.Time) string {
			return t.Format(DefaultTimestampFormat)
		}
	}
	return &TextFormatter{Config: cfg}
}

// Format assembles the final line for a message at the given level
func (f *TextFormatter) Format(t time.Time, level core.Level, msg string) string {
	if !f.PrintTimestamp && !f.PrintLevel {
		return msg
	}

	buf := getBuffer()
	defer putBuffer(buf)

	switch {
	case f.PrintTimestamp && f.PrintLevel:
		buf.WriteString(f.TimestampFormatter(t))
		buf.WriteString(" [")
		buf.WriteString(level.String())
		buf.WriteString("] ")
	case f.PrintTimestamp:
		buf.WriteByte('[')
		buf.WriteString(f.TimestampFormatter(t))
		buf.WriteString("] ")
	default: // PrintLevel only
		buf.WriteByte('[')
		buf.WriteString(level.String())
		buf.WriteString("] ")
	}
	buf.WriteString(msg)

	return buf.String()
}
