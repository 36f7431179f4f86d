package trainer

import (
	"fmt"

	apperrors "github.com/Saravanan-32/customer-service-chatbot/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Hyperparameters of a training run. Input and output sizes are derived from the dataset.
type Hyperparameters struct {
	BatchSize    int     `validate:"gt=0"`
	HiddenSize   int     `validate:"gt=0"`
	LearningRate float64 `validate:"gt=0"`
	NumEpochs    int     `validate:"gt=0"`
	ReportEvery  int     `validate:"gt=0"`
	// Seed makes shuffling and initialization reproducible when set.
	Seed *int64
}

func DefaultHyperparameters() Hyperparameters {
	return Hyperparameters{
		BatchSize:    8,
		HiddenSize:   8,
		LearningRate: 0.001,
		NumEpochs:    1000,
		ReportEvery:  100,
	}
}

func (h Hyperparameters) Validate() error {
	if err := validate.Struct(h); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidHyperparameters, err)
	}
	return nil
}
