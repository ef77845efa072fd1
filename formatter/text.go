package formatter

import (
	"bytes"
	"io"
)

// TextFormatter formats records as "[timestamp] [KIND] text" with any ANSI
// sequences removed, one record per line. It is the file line format.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = "2006-01-02T15:04:05.000000"
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *Record) ([]byte, error) {
	return format(func(buf *bytes.Buffer) { f.formatToBuffer(rec, buf) }), nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(rec *Record, w io.Writer) error {
	return formatTo(func(buf *bytes.Buffer) { f.formatToBuffer(rec, buf) }, w)
}

func (f *TextFormatter) formatToBuffer(rec *Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString("] [")
	buf.WriteString(rec.Kind.String())
	buf.WriteString("] ")
	buf.WriteString(StripColors(rec.Text))
	buf.WriteByte('\n')
}
