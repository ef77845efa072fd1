// Package logger is the public API of fanlog. Most users only need to
// import this package.
//
// A Logger builds entries and hands the rendered text, together with its
// kind, to every registered destination in registration order:
//
//	log := logger.New()
//	log.AddDestination(consoledest.New(consoledest.Config{}))
//	log.Info("listening on %s", addr)
//
// The package keeps a process-wide default Logger with no destinations.
// The package-level functions Info, Warn, Exception, etc. delegate to it,
// so a program registers its destinations once and logs from anywhere:
//
//	logger.AddDestination(file)
//	logger.Warn("disk at %d%%", pct)
//
// Every entry carries a Context naming its source. With returns a child
// Logger whose entries default to another context while sharing the
// destinations:
//
//	auth := logger.With(core.NewContext("AuthModule"))
//	auth.Error("token expired")
//
// For full control an entry can be assembled with a Builder and sent once:
//
//	logger.Create().
//	    Context(db).
//	    Kind(core.KindWarn).
//	    Exception(err).
//	    Message("query took %s", d).
//	    Send()
//
// Methods return an error only for unusable input, such as a template
// whose verbs do not match its arguments. Failures inside destinations
// never reach the caller.
package logger
