package consoledest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination"
	"github.com/philipp01105/fanlog/formatter"
)

// ColorMode selects when the console formatter emits ANSI colors
type ColorMode int

const (
	// ColorAuto colors output only when the writer is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways always colors output
	ColorAlways
	// ColorNever never colors output
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode converts "auto", "always" or "never" to a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("%w: color mode %q", core.ErrInvalidArgument, s)
	}
}

// ColorModeStrings lists the accepted color mode names
func ColorModeStrings() []string {
	return []string{"auto", "always", "never"}
}

// Config holds configuration for the console destination
type Config struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: ConsoleFormatter honoring Color)
	Formatter formatter.Formatter
	// Color selects ANSI coloring of the kind label (default: ColorAuto)
	Color ColorMode
	// Diagnostics receives write failures (default: discard)
	Diagnostics *zap.Logger
	// Now returns the timestamp for each line (default: time.Now)
	Now func() time.Time
}

// Console writes one formatted line per entry to a writer
type Console struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	diag            *zap.Logger
	now             func() time.Time
	mu              sync.Mutex // serializes writes so lines never interleave
}

// isTerminal reports whether w is a terminal file descriptor
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// New creates a console destination
func New(cfg Config) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		color := cfg.Color == ColorAlways || (cfg.Color == ColorAuto && isTerminal(cfg.Writer))
		cfg.Formatter = formatter.NewConsoleFormatter(formatter.Config{Color: color})
	}
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	c := &Console{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		diag:      cfg.Diagnostics,
		now:       cfg.Now,
	}

	// Cache WriterFormatter for the zero-copy path
	c.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return c
}

// Log formats and writes one line. Write failures are reported to the
// diagnostics logger and otherwise ignored.
func (c *Console) Log(text string, kind core.Kind) {
	rec := formatter.Record{Time: c.now(), Kind: kind, Text: text}
	if err := c.write(&rec); err != nil {
		c.diag.Warn("console write failed", zap.Stringer("kind", kind), zap.Error(err))
	}
}

// write formats and writes a record
func (c *Console) write(rec *formatter.Record) error {
	if c.writerFormatter != nil {
		c.mu.Lock()
		err := c.writerFormatter.FormatTo(rec, c.writer)
		c.mu.Unlock()
		return err
	}

	data, err := c.formatter.Format(rec)
	if err != nil {
		return err
	}

	c.mu.Lock()
	_, err = c.writer.Write(data)
	c.mu.Unlock()
	return err
}

var _ destination.Destination = (*Console)(nil)
