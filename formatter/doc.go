// Package formatter turns a rendered entry into the bytes a destination
// writes.
//
// A Record carries the rendered text, its Kind and the time the destination
// received it. Three formatters ship with the package:
//
//   - ConsoleFormatter: "[15:04:05] INFO | [System] text", with the kind
//     label colored when Config.Color is set.
//   - TextFormatter: "[2006-01-02T15:04:05.000000] [INFO] text", the file
//     line format. ANSI sequences are stripped from the text.
//   - JSONFormatter: one {"time","kind","message"} object per line.
//
// All formatters implement both Formatter and WriterFormatter and use a
// pooled bytes.Buffer internally. Buffers larger than 64 KiB are not
// returned to the pool so a single huge trace cannot inflate memory for
// the rest of the process.
package formatter
