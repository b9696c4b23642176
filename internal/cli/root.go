package cli

import "github.com/spf13/cobra"

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "gokata",
		Short:   "Work through small Go exercises with fail-fast verification",
		Version: version,
	}

	root.AddCommand(newVerifyCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newHintCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newResetCmd())
	root.AddCommand(newStatsCmd())

	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
