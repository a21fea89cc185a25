package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink forwards formatted lines into an existing zap pipeline,
// letting applications that already ship logs through zap mirror this
// logger's output without a second transport. Lines arrive fully
// assembled, so the sink emits them as the zap message at a fixed
// level chosen at construction.
type ZapSink struct {
	log   *zap.Logger
	level zapcore.Level
}

// NewZapSink creates a sink that writes every line to log at the given
// zap level.
func NewZapSink(log *zap.Logger, level zapcore.Level) *ZapSink {
	return &ZapSink{log: log, level: level}
}

// Write delivers one formatted log line to the zap pipeline
func (s *ZapSink) Write(message string) error {
	if ce := s.log.Check(s.level, message); ce != nil {
		ce.Write()
	}
	return nil
}
