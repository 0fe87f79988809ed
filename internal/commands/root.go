package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quotecalc/service-quote/internal/buildinfo"
	"github.com/quotecalc/service-quote/internal/calculation"
	"github.com/quotecalc/service-quote/internal/config"
)

// options carries settings shared by every subcommand.
type options struct {
	settings config.Settings
	logLevel string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "quotecalc",
		Short:   "Service quote calculator for bookkeeping, payroll and sales tax",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			if opts.logLevel != "" {
				settings.Log.Level = opts.logLevel
			}
			opts.settings = settings
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newQuoteCommand(opts),
		newValidateCommand(opts),
		newServeCommand(opts),
		newFormatsCommand(),
		newInitCommand(),
	)

	return rootCmd
}

// logger writes leveled logs to the command's error stream.
func (o *options) logger(cmd *cobra.Command) calculation.Logger {
	return calculation.NewStdLogger(cmd.ErrOrStderr(), calculation.ParseLevel(o.settings.Log.Level))
}

func (o *options) engine(cmd *cobra.Command) *calculation.QuoteEngine {
	engine := calculation.NewQuoteEngine()
	engine.SetLogger(o.logger(cmd))
	return engine
}
