// Package formatter defines how log messages are assembled into the
// final output line.
//
// The TextFormatter is a pure function of (time, level, message) and
// the flags frozen into it at construction. Prefix parts are joined by
// single spaces and bracketed by a fixed rule: a lone prefix (timestamp
// or level) is wrapped in square brackets, while with both prefixes
// enabled only the level is bracketed and the timestamp stays bare.
// The asymmetry is deliberate — downstream consumers parse these lines.
//
// The timestamp renderer is an opaque func(time.Time) string supplied
// once at construction; the default renders millisecond-precision
// local time. Formatting uses a pooled bytes.Buffer, and buffers larger
// than 64 KiB are not returned to the pool to prevent a single large
// log line from permanently inflating memory usage.
package formatter
