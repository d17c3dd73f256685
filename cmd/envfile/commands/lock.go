package commands

import (
	"github.com/Daisey666/envfile/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock [manifest]",
		Short: "Write or verify the manifest lock file",
		Long: "Lock writes environment.lock.json next to the manifest, recording the\n" +
			"canonical digest and every dependency entry. With --verify the digest\n" +
			"is recomputed and compared, exiting non-zero on drift.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verify, _ := cmd.Flags().GetBool("verify")
			return c.app.Lock(cmd.Context(), optionalPathArg(args), app.LockOptions{
				Verify: verify,
			})
		},
	}
	cmd.Flags().Bool("verify", false, "Verify the manifest against the existing lock file")
	return cmd
}
