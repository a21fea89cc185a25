package logger

import "github.com/seqlog/seqlog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	OffLevel   = core.OffLevel
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	EventLevel = core.EventLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	AllLevel   = core.AllLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
