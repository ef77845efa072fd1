// Package filedest provides a destination that appends entries to a file.
//
// The file is opened once by New (parent directories are created) and
// every entry is flushed immediately, one line per entry:
//
//	[2026-02-18T13:04:05.123456] [WARN] [Performance] High memory usage detected: 2048 MB
//
// ANSI color sequences are stripped from the text. The destination owns
// the file handle: call Close when logging is done. The broadcaster never
// closes it implicitly. Write failures, including entries arriving after
// Close, are reported to Config.Diagnostics and dropped.
package filedest
