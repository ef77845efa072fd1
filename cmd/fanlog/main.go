// Command fanlog demonstrates fan-out logging to the console and a file.
//
// # Usage
//
//	fanlog demo [flags]
//
// The demo logs a fixed sequence of entries covering every kind: plain
// info and warnings, debug output with runtime details, per-module
// contexts, chat messages, errors with traces, a hand-built entry and,
// with --fatal, a FATAL entry that terminates the process with status 1.
//
// # Flags
//
//	--config FILE            read settings from a YAML file
//	--debug                  deliver DEBUG entries
//	--console                log to the console (default true)
//	--color MODE             auto, always or never
//	--log-file PATH          append entries to PATH
//	--log-file-format FMT    text or json
//	--diagnostics            print the library's own diagnostics to stderr
//	--fatal                  finish the demo with a FATAL entry
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"

	"github.com/philipp01105/fanlog/config"
	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/logger"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr, os.Exit)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer, exit func(int)) *cobra.Command {
	root := &cobra.Command{
		Use:          "fanlog",
		Short:        "Fan-out logging to console, file and other loggers",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	addDemoCmd(root, stdout, stderr, exit)

	return root
}

// addDemoCmd registers the demo command on root. Completions are stored on
// the root command, so they are registered after attaching.
func addDemoCmd(root *cobra.Command, stdout, stderr io.Writer, exit func(int)) {
	cfg := config.NewConfig()
	cfg.Debug = true
	cfg.Stdout = stdout

	var (
		diagnostics bool
		fatal       bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Log an example sequence covering every entry kind",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.Load(cmd.Flags())
		},
		RunE: func(_ *cobra.Command, _ []string) (err error) {
			diag := zap.NewNop()
			if diagnostics {
				diag = newDiagnostics(stderr)
			}
			defer func() {
				// Sync on a terminal stderr can fail harmlessly.
				_ = diag.Sync()
			}()

			log, err := cfg.Build(diag, logger.WithExitFunc(exit))
			if err != nil {
				return err
			}
			defer func() {
				err = multierr.Append(err, log.Close())
			}()

			return runDemo(log, fatal)
		},
	}

	cfg.RegisterFlags(cmd.Flags())
	cmd.Flags().BoolVar(&diagnostics, "diagnostics", false, "print the library's own diagnostics to stderr")
	cmd.Flags().BoolVar(&fatal, "fatal", false, "finish the demo with a FATAL entry")

	root.AddCommand(cmd)
	if err := cfg.RegisterCompletions(cmd); err != nil {
		panic(err)
	}
}

func newDiagnostics(w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel))
}

var errNoSession = xerrors.New("session token missing")

// validateSession fails the way a real lookup would, leaving a frame
// trail in the error.
func validateSession(token string) error {
	if token == "" {
		return xerrors.Errorf("validating user session: %w", errNoSession)
	}
	if _, err := strconv.ParseUint(token, 16, 64); err != nil {
		return xerrors.Errorf("decoding session token: %w", err)
	}
	return nil
}

func runDemo(log *logger.Logger, fatal bool) error {
	steps := []func() error{
		func() error { return log.Info("Application starting...") },
		func() error {
			return log.Debug("OS: %s | Go Version: %s", runtime.GOOS, runtime.Version())
		},
		func() error { return log.Warn("Configuration file not found, using default values.") },
	}

	auth := core.NewContext("AuthModule")
	network := core.NewContext("NetworkModule")

	steps = append(steps,
		func() error { return log.With(auth).Info("Initializing authentication services...") },
		func() error { return log.With(network).Info("Establishing network connections...") },
		func() error { return log.Chat(auth, "User123", "Login request received") },
		func() error { return log.Chat(network, "System", "Connection established successfully") },
	)

	if err := validateSession(""); err != nil {
		steps = append(steps,
			func() error { return log.Exception(err) },
			func() error {
				return log.With(auth).ExceptionMessage("Failed to validate user session", err)
			},
		)
	}

	steps = append(steps,
		func() error {
			return log.Create().
				Context(core.NewContext("Performance")).
				Kind(core.KindWarn).
				Message("High memory usage detected: %d MB", 2048).
				Send()
		},
		func() error { return log.Debug("Feature flag enabled: %t", true) },
	)

	for i, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("demo step %d: %w", i+1, err)
		}
	}

	if fatal {
		log.Fatal(core.System, "Unsupported operating system detected: %s", runtime.GOOS)
		return nil
	}
	return log.Info("Running on %s environment.", runtime.GOOS)
}
