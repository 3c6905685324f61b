package train

import (
	"fmt"
	"log/slog"
	"math/rand"

	"gradweaver/internal/dataset"
	"gradweaver/internal/nn"
)

// Step records one epoch's outcome.
type Step struct {
	Epoch    int     `json:"epoch"`
	Loss     float64 `json:"loss"`
	Accuracy float64 `json:"accuracy"`
}

// History is the ordered record of a training run.
//
// It captures only logical outcomes, no timestamps or runtime-dependent
// values, so the same config and seed reproduce the same history.
type History struct {
	Steps []Step `json:"steps"`
}

// Run trains a fresh MLP under cfg and returns it with the run history.
//
// Each epoch: forward over the full dataset, ZeroGrad, Backward on the loss
// root, then an SGD update with the decayed learning rate. The graph is
// rebuilt every epoch; only leaf parameters survive across epochs.
func Run(cfg Config, logger *slog.Logger) (*nn.MLP, History, error) {
	if err := cfg.Validate(); err != nil {
		return nil, History{}, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	var points []dataset.Point
	if cfg.DatasetPath != "" {
		var err error
		points, err = dataset.ReadCSV(cfg.DatasetPath)
		if err != nil {
			return nil, History{}, err
		}
		if len(points) == 0 {
			return nil, History{}, fmt.Errorf("train: dataset %s is empty", cfg.DatasetPath)
		}
	} else {
		points = dataset.Moons(rng, cfg.Samples, cfg.Noise)
	}
	xs, ys := dataset.Split(points)

	model := nn.NewMLP(rng, len(xs[0]), append(append([]int{}, cfg.Hidden...), 1))
	logger.Info("training started",
		slog.Int("samples", len(xs)),
		slog.Int("parameters", len(model.Parameters())),
		slog.Int("epochs", cfg.Epochs),
	)

	history := History{Steps: make([]Step, 0, cfg.Epochs)}
	for k := 0; k < cfg.Epochs; k++ {
		total, accuracy := Loss(model, xs, ys, cfg.Alpha)

		model.ZeroGrad()
		total.Backward()

		lr := cfg.learningRateAt(k)
		for _, p := range model.Parameters() {
			p.SetData(p.Data() - lr*p.Grad())
		}

		history.Steps = append(history.Steps, Step{Epoch: k, Loss: total.Data(), Accuracy: accuracy})
		logger.Info("epoch",
			slog.Int("step", k),
			slog.Float64("loss", total.Data()),
			slog.Float64("accuracy", accuracy),
			slog.Float64("learning_rate", lr),
		)
	}

	return model, history, nil
}

// WriteJSON persists the history as indented JSON via an atomic write.
func (h History) WriteJSON(path string) error {
	data, err := jsonMarshalStable(h)
	if err != nil {
		return fmt.Errorf("train: marshal history: %w", err)
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("train: write history: %w", err)
	}
	return nil
}
