package train

import (
	"gradweaver/internal/engine"
	"gradweaver/internal/nn"
)

// Loss scores the model over the whole dataset and returns the total loss
// node plus the classification accuracy.
//
// The loss is the SVM max-margin hinge, mean(relu(1 - y_i * score_i)), plus
// alpha * sum(p^2) L2 regularization over the parameters. Everything is
// expressed through engine ops so Backward on the returned node reaches every
// parameter.
func Loss(model *nn.MLP, xs [][]float64, ys []float64, alpha float64) (*engine.Value, float64) {
	n := len(xs)

	losses := make([]*engine.Value, 0, n)
	correct := 0
	for i, row := range xs {
		input := make([]*engine.Value, len(row))
		for j, f := range row {
			input[j] = engine.New(f)
		}
		score := model.Forward(input)[0]

		// relu(1 - y*score): zero once the sample clears the margin.
		losses = append(losses, score.MulConst(-ys[i]).AddConst(1).Relu())

		if (ys[i] > 0) == (score.Data() > 0) {
			correct++
		}
	}
	dataLoss := engine.Sum(losses).DivConst(float64(n))

	params := model.Parameters()
	squares := make([]*engine.Value, len(params))
	for i, p := range params {
		squares[i] = p.Mul(p)
	}
	regLoss := engine.Sum(squares).MulConst(alpha)

	total := dataLoss.Add(regLoss)
	accuracy := float64(correct) / float64(n)
	return total, accuracy
}
