package commands

import (
	"github.com/Daisey666/envfile/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [manifest]",
		Short: "Rewrite a manifest into canonical form",
		Long: "Fmt sorts each dependency group by normalized package name and drops\n" +
			"exact duplicates. Channel order is resolution priority and is never\n" +
			"changed. By default the result is printed to stdout.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			check, _ := cmd.Flags().GetBool("check")
			return c.app.Format(cmd.Context(), optionalPathArg(args), app.FormatOptions{
				Write: write,
				Check: check,
			})
		},
	}
	cmd.Flags().BoolP("write", "w", false, "Rewrite the file in place")
	cmd.Flags().Bool("check", false, "Exit non-zero if the file is not canonical")
	return cmd
}
