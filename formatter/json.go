package formatter

import (
	"bytes"
	"io"
	"time"
	"unicode/utf8"
)

// JSONFormatter formats records as one JSON object per line:
// {"time":"...","kind":"INFO","message":"..."}. ANSI sequences are stripped
// from the message.
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats a record as JSON
func (f *JSONFormatter) Format(rec *Record) ([]byte, error) {
	return format(func(buf *bytes.Buffer) { f.formatJSONToBuffer(rec, buf) }), nil
}

// FormatTo formats a record as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(rec *Record, w io.Writer) error {
	return formatTo(func(buf *bytes.Buffer) { f.formatJSONToBuffer(rec, buf) }, w)
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(rec *Record, buf *bytes.Buffer) {
	buf.WriteString(`{"time":"`)
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(`","kind":"`)
	buf.WriteString(rec.Kind.String())

	buf.WriteString(`","message":"`)
	appendJSONString(buf, StripColors(rec.Text))

	buf.WriteString("\"}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				buf.WriteString(s[start:i])
				buf.WriteString(`\ufffd`)
				start = i + 1
			}
			i += size
			continue
		}
		if c >= 0x20 && c != '"' && c != '\\' {
			i++
			continue
		}
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		i++
		start = i
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
