package domain

import (
	"fmt"
	"time"

	apperrors "github.com/Saravanan-32/customer-service-chatbot/errors"
	"github.com/Saravanan-32/customer-service-chatbot/network"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Artifact is the trained model handed to persistence.
// Words and Tags keep the exact order used for feature indices and class labels:
// consumers must vectorize with Words and read scores with Tags, never recompute them.
type Artifact struct {
	ID         uuid.UUID       `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	Weights    network.Weights `json:"model_state"`
	InputSize  int             `json:"input_size"`
	HiddenSize int             `json:"hidden_size"`
	OutputSize int             `json:"output_size"`
	Words      []string        `json:"all_words"`
	Tags       []string        `json:"tags"`
	Checksum   string          `json:"checksum"`
}

func NewArtifact(weights network.Weights, words, tags []string, at time.Time) Artifact {
	input, hidden, output := weights.Shape()
	return Artifact{
		ID:         uuid.New(),
		CreatedAt:  at.UTC(),
		Weights:    weights,
		InputSize:  input,
		HiddenSize: hidden,
		OutputSize: output,
		Words:      append([]string(nil), words...),
		Tags:       append([]string(nil), tags...),
		Checksum:   VocabularyChecksum(words, tags),
	}
}

// VocabularyChecksum fingerprints the ordered words and tags.
func VocabularyChecksum(words, tags []string) string {
	d := xxhash.New()
	for _, w := range words {
		_, _ = d.WriteString(w)
		_, _ = d.Write([]byte{0})
	}
	_, _ = d.Write([]byte{0x1e})
	for _, t := range tags {
		_, _ = d.WriteString(t)
		_, _ = d.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// Verify checks the artifact is internally consistent before it is used for inference.
func (a Artifact) Verify() error {
	if a.Checksum != VocabularyChecksum(a.Words, a.Tags) {
		return fmt.Errorf("%w: artifact %s", apperrors.ErrChecksumMismatch, a.ID)
	}
	if a.InputSize != len(a.Words) || a.OutputSize != len(a.Tags) {
		return fmt.Errorf("%w: %d words / %d tags for a %dx%dx%d network",
			apperrors.ErrShapeMismatch, len(a.Words), len(a.Tags), a.InputSize, a.HiddenSize, a.OutputSize)
	}
	return a.Weights.Check(a.InputSize, a.HiddenSize, a.OutputSize)
}
