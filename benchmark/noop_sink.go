package benchmark

import "github.com/seqlog/seqlog/sink"

type noopSink struct{}

func newNoopSink() sink.Sink {
	return noopSink{}
}

func (noopSink) Write(message string) error {
	_ = len(message)
	return nil
}
