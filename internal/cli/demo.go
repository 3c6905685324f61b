package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gradweaver/internal/engine"
)

// demoExpression builds the micrograd readme expression and returns the
// output node together with the two input leaves.
func demoExpression() (g, a, b *engine.Value) {
	a = engine.New(-4.0)
	b = engine.New(2.0)

	c := a.Add(b)
	d := a.Mul(b).Add(b.Pow(3))
	c = c.Add(c.AddConst(1))
	c = c.Add(c.AddConst(1).Add(a.Neg()))
	d = d.Add(d.MulConst(2).Add(b.Add(a).Relu()))
	d = d.Add(d.MulConst(3).Add(b.Sub(a).Relu()))
	e := c.Sub(d)
	f := e.Pow(2)
	g = f.DivConst(2)
	g = g.Add(engine.New(10.0).Div(f))
	return g, a, b
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the reference forward/backward pass",
		Long: "Builds the reference expression over leaves a=-4 and b=2, prints the\n" +
			"forward result g and, after one backward pass, dg/da and dg/db.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, a, b := demoExpression()

			fmt.Fprintf(cmd.OutOrStdout(), "g = %.4f\n", g.Data())

			g.Backward()
			fmt.Fprintf(cmd.OutOrStdout(), "dg/da = %.4f\n", a.Grad())
			fmt.Fprintf(cmd.OutOrStdout(), "dg/db = %.4f\n", b.Grad())
			return nil
		},
	}
}
