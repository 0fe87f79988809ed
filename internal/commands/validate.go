package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quotecalc/service-quote/internal/config"
	"github.com/quotecalc/service-quote/internal/domain"
	"github.com/quotecalc/service-quote/internal/output"
)

// ErrInvalidFields is returned when a request is structurally sound but has flagged fields.
var ErrInvalidFields = errors.New("request has invalid fields")

func newValidateCommand(opts *options) *cobra.Command {
	var asJSON bool
	var showRequired bool
	var overrides requestOverrides

	cmd := &cobra.Command{
		Use:   "validate <request-file>",
		Short: "Report required and invalid fields of a quote request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if err := overrides.apply(req); err != nil {
				return err
			}

			report := opts.engine(cmd).Validate(req)
			out := cmd.OutOrStdout()

			if asJSON {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			} else {
				if showRequired {
					writeRequired(cmd, req, report)
				}
				problems := output.ValidationProblems(report)
				if len(problems) == 0 {
					fmt.Fprintln(out, "Request is valid")
				}
				for _, p := range problems {
					fmt.Fprintln(out, p)
				}
			}

			if !report.Valid() {
				return ErrInvalidFields
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full validation report as JSON")
	cmd.Flags().BoolVar(&showRequired, "required", false, "list the required fields of every account")
	overrides.register(cmd)

	return cmd
}

func writeRequired(cmd *cobra.Command, req *domain.QuoteRequest, report domain.ValidationReport) {
	out := cmd.OutOrStdout()
	for _, a := range report.Accounts {
		account := req.Accounts[a.Position]
		fmt.Fprintf(out, "account %d (%s): %s\n", a.Position+1, account.Category, strings.Join(a.Required.Keys(), ", "))
		var flags []string
		if a.DepositsEnabled {
			flags = append(flags, "deposits")
		}
		if a.ChecksEnabled {
			flags = append(flags, "checks")
		}
		if a.NewAvailable {
			flags = append(flags, "new")
		}
		if len(flags) > 0 {
			fmt.Fprintf(out, "  enabled: %s\n", strings.Join(flags, ", "))
		}
	}
}
