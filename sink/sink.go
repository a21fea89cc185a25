package sink

// Sink is a destination for formatted log lines. Implementations must
// be safe for concurrent use: a single sink may be shared by several
// loggers, each writing from its own worker goroutine.
type Sink interface {
	// Write delivers one formatted log line
	Write(message string) error
}

// ColorSink is an optional capability that sinks can implement to
// accept a per-level color rule alongside the line. The logger decides
// once per sink, at construction, whether this capability is present;
// it then calls WriteColored only for levels that have a registered
// rule and falls back to Write otherwise.
type ColorSink interface {
	Sink

	// WriteColored delivers one formatted log line together with the
	// styling rule registered for its level
	WriteColored(message string, rule ColorFormatter) error
}
