// Package trainer runs the optimization loop that fits a classifier network on a bag-of-words dataset.
//
// Every epoch reshuffles the example indices, cuts them into mini-batches and applies one optimizer
// step per batch. Training runs exactly NumEpochs epochs: there is no early stopping nor validation split,
// the network is expected to memorize the corpus.
package trainer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/Saravanan-32/customer-service-chatbot/ai"
	apperrors "github.com/Saravanan-32/customer-service-chatbot/errors"
	"github.com/Saravanan-32/customer-service-chatbot/network"
)

// Network is the classifier being trained. Forward caches what Backward needs;
// ZeroGrad drops both the cache and the accumulated gradients.
type Network interface {
	Forward(x []float64) []float64
	Backward(gradLogits [][]float64)
	Step()
	ZeroGrad()
}

type Dataset interface {
	Len() int
	Get(i int) (ai.Example, error)
}

// Reporter receives the loss of the last mini-batch of an epoch.
// It is a coarse progress signal: it depends on the shuffle and is not an epoch average.
type Reporter func(epoch, total int, loss float64)

type Result struct {
	Epochs  int
	Batches int
	Loss    float64
}

type Trainer struct {
	hp       Hyperparameters
	rng      *rand.Rand
	log      *slog.Logger
	reporter Reporter
}

// New validates the hyperparameters. A nil reporter logs progress lines at info level.
func New(hp Hyperparameters, log *slog.Logger, reporter Reporter) (*Trainer, error) {
	if err := hp.Validate(); err != nil {
		return nil, err
	}
	seed := time.Now().UnixNano()
	if hp.Seed != nil {
		seed = *hp.Seed
	}
	t := &Trainer{hp: hp, rng: rand.New(rand.NewSource(seed)), log: log, reporter: reporter}
	if t.reporter == nil {
		t.reporter = t.logProgress
	}
	return t, nil
}

func (t *Trainer) Hyperparameters() Hyperparameters {
	return t.hp
}

// NewNetwork sizes a feed-forward network for the dataset, initialized from the trainer's random source.
func (t *Trainer) NewNetwork(dataset *ai.Dataset) *network.FeedForward {
	return network.New(dataset.Features(), t.hp.HiddenSize, dataset.Classes(), t.hp.LearningRate, t.rng)
}

// Run trains net for exactly NumEpochs epochs.
// The context is only checked between epochs.
func (t *Trainer) Run(ctx context.Context, net Network, dataset Dataset) (Result, error) {
	size := dataset.Len()
	if size == 0 {
		return Result{}, apperrors.ErrEmptyCorpus
	}

	var result Result
	for epoch := 1; epoch <= t.hp.NumEpochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		var loss float64
		for _, batch := range Batches(t.rng.Perm(size), t.hp.BatchSize) {
			batchLoss, err := t.step(net, dataset, batch)
			if err != nil {
				return result, fmt.Errorf("epoch %d: %w", epoch, err)
			}
			loss = batchLoss
			result.Batches++
		}
		result.Epochs = epoch
		result.Loss = loss

		if epoch%t.hp.ReportEvery == 0 {
			t.reporter(epoch, t.hp.NumEpochs, loss)
		}
	}
	return result, nil
}

func (t *Trainer) step(net Network, dataset Dataset, batch []int) (float64, error) {
	logits := make([][]float64, len(batch))
	labels := make([]int, len(batch))
	for k, i := range batch {
		example, err := dataset.Get(i)
		if err != nil {
			net.ZeroGrad()
			return 0, err
		}
		logits[k] = net.Forward(example.Features)
		labels[k] = example.Label
	}

	loss, grads := CrossEntropy(logits, labels)
	if math.IsNaN(loss) || math.IsInf(loss, 0) {
		net.ZeroGrad()
		return loss, fmt.Errorf("%w: %v", apperrors.ErrNonFiniteLoss, loss)
	}

	net.Backward(grads)
	net.Step()
	net.ZeroGrad()
	return loss, nil
}

func (t *Trainer) logProgress(epoch, total int, loss float64) {
	t.log.Info(fmt.Sprintf("Epoch [%d/%d]", epoch, total), "loss", fmt.Sprintf("%.4f", loss))
}
