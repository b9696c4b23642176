package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progress and verification history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			cs, err := a.store.Load(ctx, len(a.exercises))
			if err != nil {
				return err
			}
			sum, err := a.store.GetSummary(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Exercises: %d/%d done\n", cs.DoneCount(), len(a.exercises))
			fmt.Fprintf(out, "Verify runs: %d (%d fully passed)\n", sum.VerifyRuns, sum.Passes)
			return nil
		},
	}
}
