package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/destination/consoledest"
	"github.com/philipp01105/fanlog/destination/filedest"
	"github.com/philipp01105/fanlog/formatter"
	"github.com/philipp01105/fanlog/logger"
)

// File formats accepted for the log file.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// GetAllFormatStrings returns the accepted file format names
func GetAllFormatStrings() []string {
	return []string{FormatText, FormatJSON}
}

// Flags holds CLI flag names for logger configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	ConfigFile string
	Debug      string
	Console    string
	Color      string
	File       string
	FileFormat string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:      f,
		Console:    true,
		Color:      consoledest.ColorAuto.String(),
		FileFormat: FormatText,
	}
}

// Config holds the settings used to assemble a Logger.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Build] to create the Logger.
type Config struct {
	Flags Flags

	// ConfigFile is the optional YAML file read by [Config.Load].
	ConfigFile string
	// Debug enables DEBUG entries.
	Debug bool
	// Console adds a console destination.
	Console bool
	// Color is the console color mode: auto, always or never.
	Color string
	// File, when set, adds a file destination appending to this path.
	File string
	// FileFormat is the line format of the file destination.
	FileFormat string

	// Stdout is where the console destination writes (default: os.Stdout).
	Stdout io.Writer
}

// NewConfig returns a new [Config] with default flag names and values.
func NewConfig() *Config {
	f := Flags{
		ConfigFile: "config",
		Debug:      "debug",
		Console:    "console",
		Color:      "color",
		File:       "log-file",
		FileFormat: "log-file-format",
	}

	return f.NewConfig()
}

// RegisterFlags adds logger flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.ConfigFile, c.Flags.ConfigFile, c.ConfigFile, "read settings from a YAML file")
	flags.BoolVar(&c.Debug, c.Flags.Debug, c.Debug, "deliver DEBUG entries")
	flags.BoolVar(&c.Console, c.Flags.Console, c.Console, "log to the console")
	flags.StringVar(&c.Color, c.Flags.Color, c.Color,
		fmt.Sprintf("console colors, one of: %s", consoledest.ColorModeStrings()))
	flags.StringVar(&c.File, c.Flags.File, c.File, "append entries to this file")
	flags.StringVar(&c.FileFormat, c.Flags.FileFormat, c.FileFormat,
		fmt.Sprintf("log file format, one of: %s", GetAllFormatStrings()))
}

// RegisterCompletions registers shell completions for logger flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Color,
		cobra.FixedCompletions(consoledest.ColorModeStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Color, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.FileFormat,
		cobra.FixedCompletions(GetAllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.FileFormat, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.ConfigFile,
		cobra.FixedCompletions([]string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.ConfigFile, err)
	}

	return nil
}

// fileConfig mirrors Config for YAML decoding. Pointers tell a missing key
// apart from a zero value.
type fileConfig struct {
	Debug      *bool   `yaml:"debug"`
	Console    *bool   `yaml:"console"`
	Color      *string `yaml:"color"`
	File       *string `yaml:"log-file"`
	FileFormat *string `yaml:"log-file-format"`
}

// LoadFile reads settings from the YAML file at path. Keys whose flag was
// set explicitly on flags are left alone; flags may be nil.
func (c *Config) LoadFile(path string, flags *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	changed := func(name string) bool {
		return flags != nil && flags.Changed(name)
	}

	if fc.Debug != nil && !changed(c.Flags.Debug) {
		c.Debug = *fc.Debug
	}
	if fc.Console != nil && !changed(c.Flags.Console) {
		c.Console = *fc.Console
	}
	if fc.Color != nil && !changed(c.Flags.Color) {
		c.Color = *fc.Color
	}
	if fc.File != nil && !changed(c.Flags.File) {
		c.File = *fc.File
	}
	if fc.FileFormat != nil && !changed(c.Flags.FileFormat) {
		c.FileFormat = *fc.FileFormat
	}

	return nil
}

// Load reads ConfigFile, if one was given, and validates the result.
func (c *Config) Load(flags *pflag.FlagSet) error {
	if c.ConfigFile != "" {
		if err := c.LoadFile(c.ConfigFile, flags); err != nil {
			return err
		}
	}
	return c.Validate()
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs error

	if _, err := consoledest.ParseColorMode(c.Color); err != nil {
		errs = multierr.Append(errs, err)
	}

	switch strings.ToLower(c.FileFormat) {
	case "", FormatText, FormatJSON:
	default:
		errs = multierr.Append(errs,
			fmt.Errorf("%w: log file format %q", core.ErrInvalidArgument, c.FileFormat))
	}

	return errs
}

func (c *Config) fileFormatter() formatter.Formatter {
	if strings.ToLower(c.FileFormat) == FormatJSON {
		return formatter.NewJSONFormatter(formatter.Config{})
	}
	return formatter.NewTextFormatter(formatter.Config{})
}

// Build validates c and creates a Logger with the configured destinations.
// diag receives the library's own diagnostics and may be nil; opts are
// applied after it. Closing the returned Logger releases the log file.
func (c *Config) Build(diag *zap.Logger, opts ...logger.Option) (*logger.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if diag == nil {
		diag = zap.NewNop()
	}

	log := logger.New(append([]logger.Option{logger.WithDiagnostics(diag)}, opts...)...)
	log.SetDebugEnabled(c.Debug)

	if c.Console {
		mode, _ := consoledest.ParseColorMode(c.Color)
		err := log.AddDestination(consoledest.New(consoledest.Config{
			Writer:      c.Stdout,
			Color:       mode,
			Diagnostics: diag,
		}))
		if err != nil {
			return nil, err
		}
	}

	if c.File != "" {
		fd, err := filedest.New(filedest.Config{
			Filename:    c.File,
			Formatter:   c.fileFormatter(),
			Diagnostics: diag,
		})
		if err != nil {
			return nil, multierr.Append(err, log.Close())
		}
		if err := log.AddDestination(fd); err != nil {
			return nil, multierr.Append(err, fd.Close())
		}
	}

	diag.Debug("logger built",
		zap.Bool("debug", c.Debug),
		zap.Bool("console", c.Console),
		zap.String("file", c.File),
	)

	return log, nil
}
