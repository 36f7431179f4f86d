package network

import (
	"fmt"

	apperrors "github.com/Saravanan-32/customer-service-chatbot/errors"
)

// Weights is the serializable state of a FeedForward network.
// Matrices are stored row-major: W1 is hidden x input, W2 is output x hidden.
type Weights struct {
	W1 [][]float64 `json:"w1"`
	B1 []float64   `json:"b1"`
	W2 [][]float64 `json:"w2"`
	B2 []float64   `json:"b2"`
}

// Shape returns the input, hidden and output sizes described by the weights.
func (w Weights) Shape() (input, hidden, output int) {
	hidden = len(w.W1)
	if hidden > 0 {
		input = len(w.W1[0])
	}
	return input, hidden, len(w.W2)
}

// Check verifies every matrix and bias matches the given shape.
func (w Weights) Check(input, hidden, output int) error {
	if len(w.W1) != hidden || len(w.B1) != hidden || len(w.W2) != output || len(w.B2) != output {
		return fmt.Errorf("%w: want %dx%dx%d", apperrors.ErrShapeMismatch, input, hidden, output)
	}
	for i, row := range w.W1 {
		if len(row) != input {
			return fmt.Errorf("%w: w1 row %d has %d columns, want %d", apperrors.ErrShapeMismatch, i, len(row), input)
		}
	}
	for i, row := range w.W2 {
		if len(row) != hidden {
			return fmt.Errorf("%w: w2 row %d has %d columns, want %d", apperrors.ErrShapeMismatch, i, len(row), hidden)
		}
	}
	return nil
}

func (w Weights) clone() Weights {
	return Weights{
		W1: cloneMatrix(w.W1),
		B1: append([]float64(nil), w.B1...),
		W2: cloneMatrix(w.W2),
		B2: append([]float64(nil), w.B2...),
	}
}

func newMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
