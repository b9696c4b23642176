package cli

import (
	"github.com/spf13/cobra"

	"gokata/internal/list"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Browse exercises in an interactive table",
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

			res, err := list.Run(cs, a.exercises)
			if err != nil {
				return err
			}
			if res.Dirty {
				if err := a.store.Save(ctx, res.State); err != nil {
					return err
				}
			}
			if res.Action == list.ActionContinue {
				a.events.ListAction("continue_at", res.ContinueAt)
				return a.verifyBatch(ctx, res.State, false)
			}
			return nil
		},
	}
}
