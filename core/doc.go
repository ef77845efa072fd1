// Package core defines the shared types used across fanlog.
//
// It provides the Kind type that categorizes every log entry, the Context
// type that names the logical source of an entry, and the Entry type that
// represents a single log occurrence before it is rendered and broadcast.
//
// Entries are plain values. They are built by logger.Builder, rendered
// once with Entry.Render, and discarded as soon as the broadcaster has
// handed the rendered text to every destination. Nothing in this package
// keeps a reference to an entry after rendering.
//
// Message templates go through Sprintf, which behaves like fmt.Sprintf but
// reports a template/argument mismatch as an ErrFormat error instead of
// silently embedding fmt's "%!" markers into the output.
package core
