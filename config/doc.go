// Package config builds a [logger.Logger] from command line flags and an
// optional YAML file.
//
// Flags are registered on a [*pflag.FlagSet] and shell completions on a
// [*cobra.Command]. A value given on the command line always wins over the
// same key in the file:
//
//	cfg := config.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	// in PreRunE:
//	if err := cfg.Load(cmd.Flags()); err != nil {
//	    return err
//	}
//	log, err := cfg.Build(diag)
//
// The YAML file uses the flag names without the leading dashes:
//
//	debug: true
//	color: never
//	log-file: logs/app.log
//	log-file-format: json
package config
