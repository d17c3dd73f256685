package commands

import (
	"github.com/Daisey666/envfile/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [manifests...]",
		Short: "Check manifests for structural problems",
		Long: "Validate parses each manifest and checks its structural invariants:\n" +
			"well-formed package names and version constraints, unique dependency\n" +
			"names per group, and a non-empty channel list. Without arguments the\n" +
			"nearest environment.yml above the working directory is validated.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			return c.app.Validate(cmd.Context(), args, app.ValidateOptions{
				JSON: jsonOut,
			})
		},
	}
	cmd.Flags().Bool("json", false, "Emit a machine-readable report")
	return cmd
}
