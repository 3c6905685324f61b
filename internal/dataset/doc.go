// Package dataset loads and generates the two-moons binary classification
// set used by the training demo.
//
// Points carry labels in {-1, +1} as expected by the max-margin loss.
package dataset
