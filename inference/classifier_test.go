package inference

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Saravanan-32/customer-service-chatbot/ai"
	"github.com/Saravanan-32/customer-service-chatbot/domain"
	apperrors "github.com/Saravanan-32/customer-service-chatbot/errors"
	"github.com/Saravanan-32/customer-service-chatbot/nlp"
	"github.com/Saravanan-32/customer-service-chatbot/trainer"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func trainedArtifact(t *testing.T) domain.Artifact {
	t.Helper()
	req := require.New(t)
	corpus := domain.Corpus{Intents: []domain.Intent{
		{Tag: "greeting", Patterns: []string{"Hi", "Hello", "Hey there"}},
		{Tag: "goodbye", Patterns: []string{"Bye", "Goodbye", "See you later"}},
		{Tag: "payments", Patterns: []string{"Do you take credit cards?", "Can I pay with Paypal?"}},
	}}
	tokenizer, stemmer := nlp.NewTokenizer(), nlp.NewStemmer()
	vocabulary, patterns, err := ai.BuildVocabulary(corpus, tokenizer, stemmer)
	req.NoError(err)
	dataset, err := ai.NewDataset(patterns, vocabulary, ai.NewVectorizer(vocabulary.Words, tokenizer, stemmer))
	req.NoError(err)

	hp := trainer.DefaultHyperparameters()
	hp.LearningRate = 0.01
	hp.NumEpochs = 500
	hp.Seed = lo.ToPtr(int64(42))
	tr, err := trainer.New(hp, slog.Default(), func(int, int, float64) {})
	req.NoError(err)
	net := tr.NewNetwork(dataset)
	_, err = tr.Run(context.Background(), net, dataset)
	req.NoError(err)

	return domain.NewArtifact(net.Weights(), vocabulary.Words, vocabulary.Tags, time.Now())
}

func TestClassifier_PredictsTrainingPatterns(t *testing.T) {
	req := require.New(t)
	classifier, err := New(trainedArtifact(t))
	req.NoError(err)

	tests := []struct {
		sentence string
		tag      string
	}{
		{"Hello", "greeting"},
		{"Hey there", "greeting"},
		{"See you later", "goodbye"},
		{"Do you take credit cards?", "payments"},
	}
	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			prediction := classifier.Predict(tt.sentence)
			require.Equal(t, tt.tag, prediction.Tag)
			require.Len(t, prediction.Scores, 3)
			require.InDelta(t, 1.0, lo.Sum(lo.Values(prediction.Scores)), 1e-9)
			require.Equal(t, prediction.Scores[tt.tag], prediction.Probability)
		})
	}
}

func TestClassifier_UnknownWordsStillProduceADistribution(t *testing.T) {
	req := require.New(t)
	classifier, err := New(trainedArtifact(t))
	req.NoError(err)

	// When nothing in the sentence belongs to the vocabulary
	prediction := classifier.Predict("zzz qqq")

	// Then a valid probability distribution is still returned
	req.NotEmpty(prediction.Tag)
	req.Greater(prediction.Probability, 0.0)
	req.InDelta(1.0, lo.Sum(lo.Values(prediction.Scores)), 1e-9)
}

func TestClassifier_DetectsLanguage(t *testing.T) {
	req := require.New(t)
	classifier, err := New(trainedArtifact(t))
	req.NoError(err)

	prediction := classifier.Predict("Hello, could you please tell me whether you accept payments with a credit card?")
	req.Equal("en", prediction.Lang)
}

func TestNew_RejectsTamperedArtifact(t *testing.T) {
	req := require.New(t)
	artifact := trainedArtifact(t)
	artifact.Words = append(artifact.Words[:len(artifact.Words):len(artifact.Words)], "extra")

	_, err := New(artifact)
	req.ErrorIs(err, apperrors.ErrChecksumMismatch)
}
