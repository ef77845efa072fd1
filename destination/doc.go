// Package destination defines the Destination capability and the
// Broadcaster that fans entries out to a set of destinations.
//
// A Destination has a single method, Log(text, kind). The text is the
// fully rendered entry ("[Context] message ..."); the kind lets a
// destination pick colors or levels. Destinations are invoked
// synchronously on the caller's goroutine.
//
// The Broadcaster owns an ordered, append-only registry and the process
// debug flag:
//
//   - DEBUG entries are dropped before any destination is touched while
//     the flag is off.
//   - Every other entry reaches every destination in registration order.
//   - A destination that panics is recovered and reported through the
//     diagnostics zap.Logger; delivery continues with the next one.
//
// Built-in destinations live in sub-packages:
//
//   - consoledest writes colored lines to stdout or any io.Writer.
//   - filedest appends plain lines to a file, flushing per entry.
//   - pubdest fans lines out to in-process channel subscribers.
//   - zapdest, logrusdest, zerologdest, logrdest and slogdest bridge into
//     existing loggers.
package destination
