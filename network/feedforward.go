// Package network implements the small feed-forward classifier trained on bag-of-words vectors:
// input -> Linear(hidden) -> ReLU -> Linear(output). Forward returns raw logits; the trainer owns the loss.
package network

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/viterin/vek"
)

type FeedForward struct {
	inputSize  int
	hiddenSize int
	outputSize int
	params     Weights
	grads      Weights
	optimizer  *adam

	// activations of the examples forwarded since the last ZeroGrad
	inputs [][]float64
	hidden [][]float64
}

// New creates a network with parameters drawn uniformly in ±1/sqrt(fan_in) and an Adam optimizer.
func New(inputSize, hiddenSize, outputSize int, learningRate float64, rng *rand.Rand) *FeedForward {
	params := Weights{
		W1: newMatrix(hiddenSize, inputSize),
		B1: make([]float64, hiddenSize),
		W2: newMatrix(outputSize, hiddenSize),
		B2: make([]float64, outputSize),
	}
	initUniform(params.W1, params.B1, inputSize, rng)
	initUniform(params.W2, params.B2, hiddenSize, rng)

	return &FeedForward{
		inputSize:  inputSize,
		hiddenSize: hiddenSize,
		outputSize: outputSize,
		params:     params,
		grads:      zerosLike(params),
		optimizer:  newAdam(learningRate, params),
	}
}

// FromWeights rebuilds an inference-only network. Step is a no-op on it.
func FromWeights(w Weights) (*FeedForward, error) {
	input, hidden, output := w.Shape()
	if err := w.Check(input, hidden, output); err != nil {
		return nil, err
	}
	params := w.clone()
	return &FeedForward{
		inputSize:  input,
		hiddenSize: hidden,
		outputSize: output,
		params:     params,
		grads:      zerosLike(params),
	}, nil
}

func (n *FeedForward) InputSize() int  { return n.inputSize }
func (n *FeedForward) HiddenSize() int { return n.hiddenSize }
func (n *FeedForward) OutputSize() int { return n.outputSize }

// Forward computes the logits of x and keeps its activations for the next Backward.
func (n *FeedForward) Forward(x []float64) []float64 {
	h, logits := n.forward(x)
	n.inputs = append(n.inputs, x)
	n.hidden = append(n.hidden, h)
	return logits
}

// Predict computes the logits of x without touching the training state.
func (n *FeedForward) Predict(x []float64) []float64 {
	_, logits := n.forward(x)
	return logits
}

func (n *FeedForward) forward(x []float64) ([]float64, []float64) {
	h := make([]float64, n.hiddenSize)
	for j, row := range n.params.W1 {
		h[j] = math.Max(0, dot(row, x)+n.params.B1[j])
	}
	logits := make([]float64, n.outputSize)
	for o, row := range n.params.W2 {
		logits[o] = dot(row, h) + n.params.B2[o]
	}
	return h, logits
}

// Backward accumulates parameter gradients given dLoss/dLogits for every example
// forwarded since the last ZeroGrad, in the same order.
// More gradient rows than cached examples is a caller bug and panics.
func (n *FeedForward) Backward(gradLogits [][]float64) {
	if len(gradLogits) > len(n.inputs) {
		panic(fmt.Sprintf("network: %d gradient rows for %d forwarded examples", len(gradLogits), len(n.inputs)))
	}
	for k, g := range gradLogits {
		x, h := n.inputs[k], n.hidden[k]
		dh := make([]float64, n.hiddenSize)
		for o := 0; o < n.outputSize; o++ {
			n.grads.B2[o] += g[o]
			for j := 0; j < n.hiddenSize; j++ {
				n.grads.W2[o][j] += g[o] * h[j]
				dh[j] += n.params.W2[o][j] * g[o]
			}
		}
		for j := 0; j < n.hiddenSize; j++ {
			if h[j] <= 0 {
				continue
			}
			n.grads.B1[j] += dh[j]
			for i, xi := range x {
				if xi != 0 {
					n.grads.W1[j][i] += dh[j] * xi
				}
			}
		}
	}
}

// Step applies one optimizer update from the accumulated gradients.
func (n *FeedForward) Step() {
	if n.optimizer == nil {
		return
	}
	n.optimizer.step(&n.params, &n.grads)
}

// ZeroGrad clears accumulated gradients and cached activations.
func (n *FeedForward) ZeroGrad() {
	clearWeights(n.grads)
	n.inputs = n.inputs[:0]
	n.hidden = n.hidden[:0]
}

// Weights returns a copy of the current parameters.
func (n *FeedForward) Weights() Weights {
	return n.params.clone()
}

// dot is vek.Dot that also accepts the empty vectors of an empty vocabulary.
func dot(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return vek.Dot(a, b)
}

func initUniform(w [][]float64, b []float64, fanIn int, rng *rand.Rand) {
	if fanIn == 0 {
		return
	}
	bound := 1 / math.Sqrt(float64(fanIn))
	for _, row := range w {
		for i := range row {
			row[i] = (rng.Float64()*2 - 1) * bound
		}
	}
	for i := range b {
		b[i] = (rng.Float64()*2 - 1) * bound
	}
}

func zerosLike(w Weights) Weights {
	return Weights{
		W1: newMatrix(len(w.W1), rowLen(w.W1)),
		B1: make([]float64, len(w.B1)),
		W2: newMatrix(len(w.W2), rowLen(w.W2)),
		B2: make([]float64, len(w.B2)),
	}
}

func rowLen(m [][]float64) int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func clearWeights(w Weights) {
	for _, row := range w.W1 {
		clear(row)
	}
	for _, row := range w.W2 {
		clear(row)
	}
	clear(w.B1)
	clear(w.B2)
}
