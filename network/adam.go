package network

import "math"

const (
	beta1   = 0.9
	beta2   = 0.999
	epsilon = 1e-8
)

// adam keeps the first and second moment estimates of every parameter.
type adam struct {
	learningRate float64
	t            int
	m            Weights
	v            Weights
}

func newAdam(learningRate float64, params Weights) *adam {
	return &adam{
		learningRate: learningRate,
		m:            zerosLike(params),
		v:            zerosLike(params),
	}
}

func (a *adam) step(params, grads *Weights) {
	a.t++
	c1 := 1 - math.Pow(beta1, float64(a.t))
	c2 := 1 - math.Pow(beta2, float64(a.t))
	for j := range params.W1 {
		a.update(params.W1[j], grads.W1[j], a.m.W1[j], a.v.W1[j], c1, c2)
	}
	a.update(params.B1, grads.B1, a.m.B1, a.v.B1, c1, c2)
	for o := range params.W2 {
		a.update(params.W2[o], grads.W2[o], a.m.W2[o], a.v.W2[o], c1, c2)
	}
	a.update(params.B2, grads.B2, a.m.B2, a.v.B2, c1, c2)
}

func (a *adam) update(p, g, m, v []float64, c1, c2 float64) {
	for i := range p {
		m[i] = beta1*m[i] + (1-beta1)*g[i]
		v[i] = beta2*v[i] + (1-beta2)*g[i]*g[i]
		mHat := m[i] / c1
		vHat := v[i] / c2
		p[i] -= a.learningRate * mHat / (math.Sqrt(vHat) + epsilon)
	}
}
