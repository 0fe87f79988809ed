package commands

import (
	"github.com/spf13/cobra"

	"github.com/quotecalc/service-quote/internal/api"
)

func newServeCommand(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the quote API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := opts.settings.Server
			if addr != "" {
				settings.Address = addr
			}
			logger := opts.logger(cmd)
			engine := opts.engine(cmd)
			return api.NewServer(settings, engine, logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from settings, :8080)")

	return cmd
}
