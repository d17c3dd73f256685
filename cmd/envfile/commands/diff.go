package commands

import (
	"github.com/Daisey666/envfile/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two manifests",
		Long: "Diff reports dependencies added, removed, or modified between two\n" +
			"manifests, and whether the channel priority changed. Dependency list\n" +
			"order is ignored. Exits non-zero when the manifests differ.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			return c.app.Diff(cmd.Context(), args[0], args[1], app.DiffOptions{
				JSON: jsonOut,
			})
		},
	}
	cmd.Flags().Bool("json", false, "Emit the diff as JSON")
	return cmd
}
