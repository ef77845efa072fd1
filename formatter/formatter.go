package formatter

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/philipp01105/fanlog/core"
)

// Record is what a destination formats: the rendered entry text, its kind,
// and the time the destination received it.
type Record struct {
	Time time.Time
	Kind core.Kind
	Text string
}

// Formatter defines the interface for line formatters
type Formatter interface {
	// Format formats a record into bytes
	Format(rec *Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a record and writes it directly to the writer
	FormatTo(rec *Record, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (each formatter has its own default)
	TimestampFormat string
	// Color enables ANSI colors where the formatter supports them
	Color bool
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

// format runs fn against a pooled buffer and returns a copy of the result
func format(fn func(buf *bytes.Buffer)) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	fn(buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// formatTo runs fn against a pooled buffer and writes the result to w
func formatTo(fn func(buf *bytes.Buffer), w io.Writer) error {
	buf := getBuffer()
	fn(buf)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}
