package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/autoalias-go/pkg/autoalias/ident"
)

func newNormalizeCommand() *cobra.Command {
	var camel bool

	cmd := &cobra.Command{
		Use:   "normalize <text>...",
		Short: "Print the alias derived from label text",
		Long: `Normalize prints the alias sync would derive from the given label text.
Arguments are joined with spaces.

Example:
  autoalias normalize wall thickness      # wall_thickness
  autoalias normalize --camel größe außen  # groesseAussen`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if camel {
				fmt.Fprintln(cmd.OutOrStdout(), ident.CamelCase(text))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ident.NormalizeAlias(text))
			return nil
		},
	}

	cmd.Flags().BoolVar(&camel, "camel", false, "print a camelCase token instead")
	return cmd
}
