package filedest

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
	"github.com/philipp01105/fanlog/formatter"
)

// ErrClosed is reported when a closed file destination receives an entry
var ErrClosed = errors.New("file destination closed")

// Config holds configuration for the file destination
type Config struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Diagnostics receives write failures (default: discard)
	Diagnostics *zap.Logger
	// Now returns the timestamp for each line (default: time.Now)
	Now func() time.Time
	// Perm is the mode used when creating the file (default: 0644)
	Perm os.FileMode
}

// File appends one formatted line per entry to a file, flushing after every
// line so entries survive a crash. Close releases the file handle.
type File struct {
	filename        string
	file            *os.File
	bufWriter       *bufio.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	diag            *zap.Logger
	now             func() time.Time
	mu              sync.Mutex
	closed          bool
	written         atomic.Uint64
	failed          atomic.Uint64
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *Config) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}
}

// New opens (creating if needed) cfg.Filename in append mode
func New(cfg Config) (*File, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("%w: filename is required", core.ErrInvalidArgument)
	}
	applyFileDefaults(&cfg)

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.Perm)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	f := &File{
		filename:  cfg.Filename,
		file:      file,
		bufWriter: bufio.NewWriterSize(file, 4096),
		formatter: cfg.Formatter,
		diag:      cfg.Diagnostics,
		now:       cfg.Now,
	}

	// Cache WriterFormatter for the zero-copy path
	f.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return f, nil
}

// Log appends one line. Failures, including logging after Close, are
// reported to the diagnostics logger and never reach the caller.
func (f *File) Log(text string, kind core.Kind) {
	rec := formatter.Record{Time: f.now(), Kind: kind, Text: text}
	if err := f.write(&rec); err != nil {
		f.failed.Add(1)
		f.diag.Warn("file write failed",
			zap.String("file", f.filename),
			zap.Stringer("kind", kind),
			zap.Error(err),
		)
		return
	}
	f.written.Add(1)
}

// write formats, writes and flushes a record
func (f *File) write(rec *formatter.Record) error {
	var data []byte
	if f.writerFormatter == nil {
		var err error
		if data, err = f.formatter.Format(rec); err != nil {
			return err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}

	var err error
	if f.writerFormatter != nil {
		err = f.writerFormatter.FormatTo(rec, f.bufWriter)
	} else {
		_, err = f.bufWriter.Write(data)
	}
	if err != nil {
		return err
	}
	return f.bufWriter.Flush()
}

// Filename returns the path of the log file
func (f *File) Filename() string {
	return f.filename
}

// Written returns the number of lines successfully written
func (f *File) Written() uint64 {
	return f.written.Load()
}

// Failed returns the number of lines that could not be written
func (f *File) Failed() uint64 {
	return f.failed.Load()
}

// Close flushes, syncs and closes the underlying file. It is idempotent.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	flushErr := f.bufWriter.Flush()
	if flushErr != nil {
		f.file.Close()
		return flushErr
	}
	syncErr := f.file.Sync()
	if syncErr != nil {
		f.file.Close()
		return syncErr
	}
	return f.file.Close()
}

var _ destination.Destination = (*File)(nil)
