package formatter

import (
	"bytes"
	"io"
)

// ConsoleFormatter formats records as "[HH:MM:SS] LABEL | text"
type ConsoleFormatter struct {
	Config
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(cfg Config) *ConsoleFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = "15:04:05"
	}
	return &ConsoleFormatter{Config: cfg}
}

// Format formats a record as a console line
func (f *ConsoleFormatter) Format(rec *Record) ([]byte, error) {
	return format(func(buf *bytes.Buffer) { f.formatToBuffer(rec, buf) }), nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *ConsoleFormatter) FormatTo(rec *Record, w io.Writer) error {
	return formatTo(func(buf *bytes.Buffer) { f.formatToBuffer(rec, buf) }, w)
}

func (f *ConsoleFormatter) formatToBuffer(rec *Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString("] ")
	buf.WriteString(Label(rec.Kind, f.Color))
	buf.WriteString(" | ")
	buf.WriteString(rec.Text)
	buf.WriteByte('\n')
}
