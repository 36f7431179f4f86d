package trainer

import "math"

// CrossEntropy returns the mean softmax cross-entropy of a batch of logits against integer labels,
// and the gradient of that mean with respect to every logit.
func CrossEntropy(logits [][]float64, labels []int) (float64, [][]float64) {
	if len(logits) == 0 {
		return 0, nil
	}
	n := float64(len(logits))
	var loss float64
	grads := make([][]float64, len(logits))
	for k, row := range logits {
		p := softmax(row)
		loss -= logSoftmaxAt(row, labels[k])
		p[labels[k]]--
		for c := range p {
			p[c] /= n
		}
		grads[k] = p
	}
	return loss / n, grads
}

// Softmax turns raw class scores into probabilities.
func Softmax(logits []float64) []float64 {
	return softmax(logits)
}

func softmax(logits []float64) []float64 {
	peak := maxOf(logits)
	out := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		out[i] = math.Exp(l - peak)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func logSoftmaxAt(logits []float64, i int) float64 {
	peak := maxOf(logits)
	var sum float64
	for _, l := range logits {
		sum += math.Exp(l - peak)
	}
	return logits[i] - peak - math.Log(sum)
}

func maxOf(values []float64) float64 {
	peak := math.Inf(-1)
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	return peak
}
