package train

import (
	"strings"

	"gradweaver/internal/engine"
	"gradweaver/internal/nn"
)

// Boundary renders an ASCII view of the model's decision regions over
// [-2, 2) x (-2, 2]: '*' where the score is positive, '.' elsewhere.
//
// bound controls resolution: the grid is 2*bound cells on each side.
func Boundary(model *nn.MLP, bound int) string {
	var b strings.Builder
	for y := -bound; y < bound; y++ {
		for x := -bound; x < bound; x++ {
			input := []*engine.Value{
				engine.New(float64(x) / float64(bound) * 2.0),
				engine.New(-float64(y) / float64(bound) * 2.0),
			}
			score := model.Forward(input)[0]
			if score.Data() > 0 {
				b.WriteString("* ")
			} else {
				b.WriteString(". ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
