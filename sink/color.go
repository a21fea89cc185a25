package sink

import "github.com/seqlog/seqlog/core"

// ColorFormatter is an opaque styling rule registered per level. The
// logger passes it through to color-capable sinks unmodified and never
// interprets it; what "styling" means is entirely the sink's business.
type ColorFormatter func(message string) string

// ANSI escape codes for the built-in rules
const (
	ansiReset   = "\033[0m"
	ansiDim     = "\033[2m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
)

// ANSI builds a ColorFormatter that wraps the message in the given
// escape codes and resets afterwards.
func ANSI(codes ...string) ColorFormatter {
	prefix := ""
	for _, c := range codes {
		prefix += c
	}
	return func(message string) string {
		return prefix + message + ansiReset
	}
}

// Predefined color rules
var (
	Red     = ANSI(ansiRed)
	Green   = ANSI(ansiGreen)
	Yellow  = ANSI(ansiYellow)
	Magenta = ANSI(ansiMagenta)
	Cyan    = ANSI(ansiCyan)
	Dim     = ANSI(ansiDim)
)

// DefaultColorFormatters returns the conventional per-level palette
func DefaultColorFormatters() map[core.Level]ColorFormatter {
	return map[core.Level]ColorFormatter{
		core.ErrorLevel: Red,
		core.WarnLevel:  Yellow,
		core.EventLevel: Magenta,
		core.InfoLevel:  Green,
		core.DebugLevel: Dim,
	}
}
