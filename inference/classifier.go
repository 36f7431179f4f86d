package inference

import (
	"fmt"

	"github.com/Saravanan-32/customer-service-chatbot/ai"
	"github.com/Saravanan-32/customer-service-chatbot/domain"
	"github.com/Saravanan-32/customer-service-chatbot/network"
	"github.com/Saravanan-32/customer-service-chatbot/nlp"
	"github.com/Saravanan-32/customer-service-chatbot/trainer"
	"github.com/abadojack/whatlanggo"
	"github.com/viterin/vek"
)

//go:generate go run go.uber.org/mock/mockgen -source=classifier.go -destination=../mocks/mock_classifier.go -package=mocks
type IClassifier interface {
	Predict(sentence string) Prediction
}

type Prediction struct {
	Tag         string
	Probability float64
	Scores      map[string]float64
	// Lang is the ISO 639-1 code of the detected language, empty when unknown.
	Lang string
}

type Classifier struct {
	artifact   domain.Artifact
	net        *network.FeedForward
	vectorizer *ai.Vectorizer
}

// New rebuilds a classifier from a persisted artifact.
// The artifact is rejected when its vocabulary checksum or weight shapes do not match.
func New(artifact domain.Artifact) (*Classifier, error) {
	if err := artifact.Verify(); err != nil {
		return nil, fmt.Errorf("artifact %s: %w", artifact.ID, err)
	}
	net, err := network.FromWeights(artifact.Weights)
	if err != nil {
		return nil, err
	}
	return &Classifier{
		artifact:   artifact,
		net:        net,
		vectorizer: ai.NewVectorizer(artifact.Words, nlp.NewTokenizer(), nlp.NewStemmer()),
	}, nil
}

func (c *Classifier) Artifact() domain.Artifact {
	return c.artifact
}

func (c *Classifier) Predict(sentence string) Prediction {
	probabilities := trainer.Softmax(c.net.Predict(c.vectorizer.Features(sentence)))
	best := vek.ArgMax(probabilities)

	scores := make(map[string]float64, len(probabilities))
	for i, p := range probabilities {
		scores[c.artifact.Tags[i]] = p
	}
	return Prediction{
		Tag:         c.artifact.Tags[best],
		Probability: probabilities[best],
		Scores:      scores,
		Lang:        detectLang(sentence),
	}
}

func detectLang(sentence string) string {
	info := whatlanggo.Detect(sentence)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
