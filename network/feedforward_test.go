package network

import (
	"math"
	"math/rand"
	"testing"

	apperrors "github.com/Saravanan-32/customer-service-chatbot/errors"
	"github.com/stretchr/testify/require"
)

func TestFeedForward_Shapes(t *testing.T) {
	req := require.New(t)
	net := New(5, 8, 3, 0.001, rand.New(rand.NewSource(1)))

	logits := net.Forward([]float64{1, 0, 0, 1, 0})
	req.Len(logits, 3)

	w := net.Weights()
	input, hidden, output := w.Shape()
	req.Equal(5, input)
	req.Equal(8, hidden)
	req.Equal(3, output)
	req.NoError(w.Check(5, 8, 3))
}

func TestFeedForward_StepMovesWeightsAgainstGradient(t *testing.T) {
	req := require.New(t)
	net := New(2, 4, 2, 0.01, rand.New(rand.NewSource(7)))
	x := []float64{1, 1}

	before := lossFor(net.Predict(x), 0)
	for i := 0; i < 50; i++ {
		logits := net.Forward(x)
		net.Backward([][]float64{softmaxGrad(logits, 0)})
		net.Step()
		net.ZeroGrad()
	}
	after := lossFor(net.Predict(x), 0)

	req.Less(after, before)
}

func TestFeedForward_EmptyInput(t *testing.T) {
	req := require.New(t)
	// Given a network over an empty vocabulary
	net := New(0, 4, 2, 0.01, rand.New(rand.NewSource(5)))

	// When it is trained on the zero-length vector
	logits := net.Forward([]float64{})
	net.Backward([][]float64{softmaxGrad(logits, 1)})
	net.Step()
	net.ZeroGrad()

	// Then only the biases carry the prediction
	req.Len(logits, 2)
	req.Len(net.Predict(nil), 2)
	input, hidden, output := net.Weights().Shape()
	req.Equal(0, input)
	req.Equal(4, hidden)
	req.Equal(2, output)
}

func TestFeedForward_BackwardPanicsOnTooManyGradients(t *testing.T) {
	req := require.New(t)
	net := New(2, 3, 2, 0.01, rand.New(rand.NewSource(3)))
	logits := net.Forward([]float64{1, 0})

	req.Panics(func() {
		net.Backward([][]float64{softmaxGrad(logits, 0), softmaxGrad(logits, 1)})
	})
}

func TestFeedForward_ZeroGradClearsState(t *testing.T) {
	req := require.New(t)
	net := New(2, 3, 2, 0.01, rand.New(rand.NewSource(3)))

	logits := net.Forward([]float64{1, 0})
	net.Backward([][]float64{softmaxGrad(logits, 1)})
	net.ZeroGrad()
	snapshot := net.Weights()

	// Given no gradient accumulated, a step keeps the weights unchanged
	net.Step()
	req.Equal(snapshot, net.Weights())
	req.Empty(net.inputs)
}

func TestFromWeights(t *testing.T) {
	req := require.New(t)
	trained := New(3, 2, 2, 0.01, rand.New(rand.NewSource(11)))
	x := []float64{0, 1, 1}

	restored, err := FromWeights(trained.Weights())
	req.NoError(err)
	req.Equal(trained.Predict(x), restored.Predict(x))

	// Inference-only networks never move
	restored.Step()
	req.Equal(trained.Weights(), restored.Weights())
}

func TestFromWeights_ShapeMismatch(t *testing.T) {
	req := require.New(t)
	w := New(3, 2, 2, 0.01, rand.New(rand.NewSource(11))).Weights()
	w.B2 = w.B2[:1]

	_, err := FromWeights(w)
	req.ErrorIs(err, apperrors.ErrShapeMismatch)
}

func softmaxGrad(logits []float64, label int) []float64 {
	p := softmax(logits)
	p[label]--
	return p
}

func lossFor(logits []float64, label int) float64 {
	return -math.Log(softmax(logits)[label])
}

func softmax(logits []float64) []float64 {
	max := math.Inf(-1)
	for _, l := range logits {
		max = math.Max(max, l)
	}
	out := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		out[i] = math.Exp(l - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
