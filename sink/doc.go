// Package sink defines where formatted log lines go.
//
// The logger core depends only on the two capability interfaces
// declared here. Every sink exposes Write; a sink that can render
// per-level styling additionally exposes WriteColored and is detected
// by the logger once, when the sink is registered. ColorFormatter
// values are opaque to the logger — it forwards whatever rule was
// registered for the message's level and lets the sink apply it.
//
// Built-in sinks:
//
//   - ConsoleSink writes newline-terminated lines to any io.Writer
//     (default: stdout).
//   - ColorConsoleSink is the color-capable console variant; it applies
//     the rule to the whole line.
//   - FileSink appends to a single file. It does not rotate.
//   - ZapSink bridges lines into an existing *zap.Logger.
//
// Sinks may be shared by multiple loggers, each dispatching from its
// own worker goroutine, so every built-in sink serializes its writes
// internally. Custom sinks must do the same if they are shared.
package sink
