// Package consoledest provides a destination that writes one line per
// entry to the console (default: os.Stdout) or any io.Writer.
//
// Lines look like "[15:04:05] WARN | [System] text". The kind label is
// colored when the writer is a terminal; Config.Color forces colors on or
// off. Writes are serialized so concurrent entries never interleave, and a
// failed write is reported to Config.Diagnostics instead of reaching the
// caller.
package consoledest
