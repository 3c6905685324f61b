package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gradweaver/internal/graphviz"
)

func newDotCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the demo expression graph as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, _ := demoExpression()
			g.Backward()

			if err := graphviz.WriteFile(outPath, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "graph.dot", "Output path for the DOT file")
	return cmd
}
