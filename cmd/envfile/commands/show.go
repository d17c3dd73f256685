package commands

import (
	"github.com/Daisey666/envfile/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [manifest]",
		Short: "Print the parsed manifest model",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			return c.app.Show(cmd.Context(), optionalPathArg(args), app.ShowOptions{
				JSON: jsonOut,
			})
		},
	}
	cmd.Flags().Bool("json", false, "Emit the model as JSON")
	return cmd
}
