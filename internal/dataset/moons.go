package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// Point is one labeled sample in the plane.
type Point struct {
	X     float64
	Y     float64
	Label float64
}

// ErrMalformedRow marks CSV rows that cannot be parsed into a Point.
var ErrMalformedRow = errors.New("malformed dataset row")

func malformedf(line int, format string, args ...any) error {
	return fmt.Errorf("%w (line %d): %s", ErrMalformedRow, line, fmt.Sprintf(format, args...))
}

// ReadCSV parses an x,y,label file, skipping the header row.
func ReadCSV(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	var points []Point
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue // header
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, ",")
		if len(fields) != 3 {
			return nil, malformedf(line, "expected 3 fields, got %d", len(fields))
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, malformedf(line, "x: %v", err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, malformedf(line, "y: %v", err)
		}
		label, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, malformedf(line, "label: %v", err)
		}
		points = append(points, Point{X: x, Y: y, Label: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	return points, nil
}

// Moons generates n points on two interleaving half-circles with Gaussian
// noise, labeled -1 and +1. The draw order is deterministic for a given rng.
func Moons(rng *rand.Rand, n int, noise float64) []Point {
	points := make([]Point, 0, n)
	half := n / 2

	for i := 0; i < half; i++ {
		theta := math.Pi * float64(i) / float64(half)
		points = append(points, Point{
			X:     math.Cos(theta) + rng.NormFloat64()*noise,
			Y:     math.Sin(theta) + rng.NormFloat64()*noise,
			Label: -1,
		})
	}
	for i := 0; i < n-half; i++ {
		theta := math.Pi * float64(i) / float64(n-half)
		points = append(points, Point{
			X:     1 - math.Cos(theta) + rng.NormFloat64()*noise,
			Y:     0.5 - math.Sin(theta) + rng.NormFloat64()*noise,
			Label: 1,
		})
	}
	return points
}

// Split separates points into feature rows and labels for the trainer.
func Split(points []Point) (xs [][]float64, ys []float64) {
	xs = make([][]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i] = []float64{p.X, p.Y}
		ys[i] = p.Label
	}
	return xs, ys
}
