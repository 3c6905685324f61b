// Package nn builds feed-forward networks neuron-by-neuron on top of the
// engine package.
//
// It is a pure client of the engine API: every forward pass constructs a
// fresh computation graph out of engine.Value nodes, and gradients arrive via
// engine's Backward on whatever loss node the caller derives.
//
// Determinism: weight initialization draws from an injected *rand.Rand, so a
// fixed seed reproduces the same model.
package nn
