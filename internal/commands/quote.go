package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quotecalc/service-quote/internal/config"
	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/quotecalc/service-quote/internal/output"
)

// requestOverrides are command-line values that replace fields of the loaded request.
type requestOverrides struct {
	frequency string
	asOf      string
	year      int
}

func (o requestOverrides) apply(req *domain.QuoteRequest) error {
	if o.frequency != "" {
		f, ok := config.MatchFrequency(o.frequency)
		if !ok {
			return fmt.Errorf("unknown frequency %q", o.frequency)
		}
		req.Frequency = f
	}
	if o.asOf != "" {
		t, err := time.Parse("2006-01-02", o.asOf)
		if err != nil {
			return fmt.Errorf("parsing --as-of: %w", err)
		}
		req.AsOf = t
	}
	if o.year != 0 {
		req.Year = o.year
	}
	return nil
}

func (o *requestOverrides) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.frequency, "frequency", "", "override billing frequency (monthly or annual)")
	cmd.Flags().StringVar(&o.asOf, "as-of", "", "quote date as YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&o.year, "year", 0, "quote year for annual quotes")
}

func newQuoteCommand(opts *options) *cobra.Command {
	var format string
	var outputDir string
	var overrides requestOverrides

	cmd := &cobra.Command{
		Use:   "quote <request-file>",
		Short: "Price a quote request",
		Long: "Price a quote request read from a YAML or JSON file and print it in the chosen format.\n" +
			"With --output-dir the quote is written to a timestamped file instead; --format all writes every format.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if err := overrides.apply(req); err != nil {
				return err
			}

			result, err := opts.engine(cmd).RunQuote(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("computing quote: %w", err)
			}

			if format == "" {
				format = opts.settings.Output.Format
			}

			if outputDir != "" {
				paths, err := output.GenerateReport(result, format, outputDir)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
				}
				return nil
			}

			data, err := output.Render(result, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (console, text, json, csv, html; default from settings)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "write the quote to a file in this directory")
	overrides.register(cmd)

	return cmd
}
