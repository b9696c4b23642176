package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <exercise>",
		Short: "Mark an exercise as pending again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			idx, err := a.findExercise(args[0])
			if err != nil {
				return err
			}
			cs, err := a.store.Load(ctx, len(a.exercises))
			if err != nil {
				return err
			}
			if !cs.Progress[idx] {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already pending.\n", args[0])
				return nil
			}
			cs.Progress[idx] = false
			if err := a.store.Save(ctx, cs); err != nil {
				return err
			}
			a.events.ListAction("reset", idx)
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s.\n", args[0])
			return nil
		},
	}
}
