package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the gradweaver command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gradweaver",
		Short:         "Scalar reverse-mode automatic differentiation playground",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDemoCmd(), newTrainCmd(), newDotCmd())
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(args []string) int {
	root := NewRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
