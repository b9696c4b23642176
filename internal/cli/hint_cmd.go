package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint <exercise>",
		Short: "Print the hint for an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			idx, err := a.findExercise(args[0])
			if err != nil {
				return err
			}
			hint := a.exercises[idx].Hint
			if strings.TrimSpace(hint) == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No hint for this exercise.")
				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle("dark"),
				glamour.WithWordWrap(78),
			)
			if err == nil {
				if out, rerr := renderer.Render(hint); rerr == nil {
					fmt.Fprint(cmd.OutOrStdout(), out)
					return nil
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(hint))
			return nil
		},
	}
}
