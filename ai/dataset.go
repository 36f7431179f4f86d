package ai

import (
	"fmt"

	apperrors "github.com/Saravanan-32/customer-service-chatbot/errors"
)

// Example is one training pair: a bag-of-words vector and its class label.
type Example struct {
	Features []float64
	Label    int
}

// Dataset is the fixed, randomly accessible training set.
type Dataset struct {
	examples []Example
	features int
	classes  int
}

// NewDataset vectorizes every pattern once.
func NewDataset(patterns []Pattern, vocabulary Vocabulary, vectorizer *Vectorizer) (*Dataset, error) {
	examples := make([]Example, 0, len(patterns))
	for _, p := range patterns {
		label, ok := vocabulary.Label(p.Tag)
		if !ok {
			return nil, fmt.Errorf("%w: tag %q is not in the vocabulary", apperrors.ErrMalformedCorpus, p.Tag)
		}
		examples = append(examples, Example{Features: vectorizer.Vectorize(p.Tokens), Label: label})
	}
	return &Dataset{examples: examples, features: len(vocabulary.Words), classes: len(vocabulary.Tags)}, nil
}

func (d *Dataset) Len() int {
	return len(d.examples)
}

// Features is the length of every feature vector.
func (d *Dataset) Features() int {
	return d.features
}

// Classes is the number of distinct labels.
func (d *Dataset) Classes() int {
	return d.classes
}

// Get returns a copy of the i-th example.
func (d *Dataset) Get(i int) (Example, error) {
	if i < 0 || i >= len(d.examples) {
		return Example{}, fmt.Errorf("%w: %d not in [0, %d)", apperrors.ErrIndexOutOfRange, i, len(d.examples))
	}
	e := d.examples[i]
	return Example{Features: append([]float64(nil), e.Features...), Label: e.Label}, nil
}
