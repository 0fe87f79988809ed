package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quotecalc/service-quote/internal/output"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Formats: %s, all\n", strings.Join(output.AvailableFormatterNames(), ", "))
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
			return nil
		},
	}
}
