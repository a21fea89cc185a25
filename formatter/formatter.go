package formatter

import (
	"bytes"
	"sync"
	"time"
)

// DefaultTimestampFormat is the layout used when no timestamp
// formatter is configured: local time with millisecond precision.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// TimestampFormatter renders a point in time as a string. The logger
// treats it as opaque; only the formatter invokes it.
type TimestampFormatter func(t time.Time) string

// Config holds formatter configuration
type Config struct {
	// PrintTimestamp prepends a rendered timestamp to each line
	PrintTimestamp bool
	// PrintLevel prepends the level's display name to each line
	PrintLevel bool
	// TimestampFormatter renders the timestamp (nil for the default
	// millisecond-precision local-time pattern)
	TimestampFormatter TimestampFormatter
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
