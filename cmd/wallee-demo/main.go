package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eluv-io/wallee-go"
)

var validate = validator.New()

func newLogger(out io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), wallee.Context(err, "invalid log level")
	}
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "wallee-demo").
		Logger(), nil
}

// loadConfig reads the configuration from v and validates it.
func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, wallee.Context(err, "failed to unmarshal config")
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, wallee.Context(err, "config validation failed")
	}
	return cfg, nil
}

func newRootCmd(out, logOut io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WALLEE_DEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "wallee-demo",
		Short:         "Demonstrates wallee errors",
		Long:          `Runs operations that may fail and renders the resulting errors with their context, locations and backtraces.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	probeCmd := &cobra.Command{
		Use:   "probe [paths...]",
		Short: "Open and stat the given paths concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				_, _ = fmt.Fprintf(out, "%+s\n", err)
				return err
			}
			logger, err := newLogger(logOut, cfg.LogLevel)
			if err != nil {
				return err
			}
			wallee.SetCaptureBacktrace(cfg.Backtrace)
			wallee.PrintBacktrace = cfg.Backtrace

			logger.Info().
				Strs("paths", args).
				Str("format", cfg.Format).
				Int("depth", cfg.Depth).
				Msg("starting probe")

			err = probe(cmd.Context(), args, logger)
			if err == nil {
				logger.Info().Msg("all paths probed successfully")
				return nil
			}
			err = deepen(err, cfg.Depth)
			wallee.LogEvent(logger.Error(), err).Msg("probe failed")
			_, _ = fmt.Fprintln(out, render(err, cfg.Format))
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("format", "alternate-debug", "Error format: display, alternate, debug or alternate-debug")
	flags.Int("depth", 0, "Number of additional context layers to add to a failure")
	flags.Bool("backtrace", true, "Capture and print backtraces")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")

	// Bind flags to viper
	_ = v.BindPFlag("format", flags.Lookup("format"))
	_ = v.BindPFlag("depth", flags.Lookup("depth"))
	_ = v.BindPFlag("backtrace", flags.Lookup("backtrace"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))

	rootCmd.AddCommand(probeCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
