package cli

import (
	"github.com/spf13/cobra"

	"gokata/internal/verify"
)

func newRunCmd() *cobra.Command {
	var showHints bool

	cmd := &cobra.Command{
		Use:   "run <exercise>",
		Short: "Verify a single exercise by name",
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

			done, err := a.runner().Check(ctx, a.exercises[idx], verify.Options{
				Verbose:   a.cfg.Verbose,
				ShowHints: showHints,
				Animate:   true,
			})
			if err != nil {
				return err
			}
			if done && !cs.Progress[idx] {
				cs.Progress[idx] = true
				if err := a.store.Save(ctx, cs); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showHints, "hints", false, "show the exercise hint on the success prompt")
	return cmd
}
