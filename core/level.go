package core

import "strings"

// Level represents the severity of a log message or the verbosity
// threshold of a logger. Levels are totally ordered:
//
//	Off < Error < Warn < Event < Info < Debug < All
//
// Off and All are valid only as thresholds; Error through Debug are
// the valid message levels.
type Level int8

const (
	// OffLevel admits no messages when used as a threshold
	OffLevel Level = iota
	// ErrorLevel for error messages
	ErrorLevel
	// WarnLevel for warning messages
	WarnLevel
	// EventLevel for notable application events
	EventLevel
	// InfoLevel for general informational messages (default threshold)
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// AllLevel admits every message when used as a threshold
	AllLevel
)

// String returns the canonical display name of the level
func (l Level) String() string {
	switch l {
	case OffLevel:
		return "Off"
	case ErrorLevel:
		return "Error"
	case WarnLevel:
		return "Warn"
	case EventLevel:
		return "Event"
	case InfoLevel:
		return "Info"
	case DebugLevel:
		return "Debug"
	case AllLevel:
		return "All"
	default:
		return "Unknown"
	}
}

// Admits reports whether a message at level msg passes a threshold of l.
// A message passes when its rank is at or below the threshold's rank, so
// OffLevel admits nothing (no message carries OffLevel) and AllLevel
// admits everything.
func (l Level) Admits(msg Level) bool {
	return msg <= l
}

// Message reports whether l is a valid level for a log message.
// OffLevel and AllLevel are threshold-only values.
func (l Level) Message() bool {
	return l >= ErrorLevel && l <= DebugLevel
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "OFF":
		return OffLevel
	case "ERROR":
		return ErrorLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "EVENT":
		return EventLevel
	case "INFO":
		return InfoLevel
	case "DEBUG":
		return DebugLevel
	case "ALL":
		return AllLevel
	default:
		return InfoLevel
	}
}
