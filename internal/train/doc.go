// Package train runs gradient-descent training of an nn.MLP on the two-moons
// set, driving the engine's forward/backward passes.
//
// It is intentionally split into:
//   - Config: YAML-loadable hyperparameters with validation.
//   - Loss: SVM max-margin loss plus L2 regularization, built from engine ops.
//   - Run: the epoch loop (forward, zero-grad, backward, SGD update).
//   - History and checkpoints: JSON run artifacts written atomically.
package train
