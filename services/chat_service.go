package services

import (
	"log/slog"
	"math/rand/v2"

	"github.com/Saravanan-32/customer-service-chatbot/domain"
	"github.com/Saravanan-32/customer-service-chatbot/inference"
)

const NotUnderstood = "I do not understand..."

type IChatService interface {
	Reply(sentence string) (string, inference.Prediction)
}

type ChatService struct {
	log        *slog.Logger
	classifier inference.IClassifier
	corpus     domain.Corpus
	threshold  float64
	rng        *rand.Rand
}

func NewChatService(log *slog.Logger, classifier inference.IClassifier, corpus domain.Corpus,
	threshold float64, rng *rand.Rand) *ChatService {
	return &ChatService{
		log:        log,
		classifier: classifier,
		corpus:     corpus,
		threshold:  threshold,
		rng:        rng,
	}
}

// Reply answers with one of the responses of the predicted intent.
// Predictions under the confidence threshold, or intents without responses, get NotUnderstood.
func (s *ChatService) Reply(sentence string) (string, inference.Prediction) {
	prediction := s.classifier.Predict(sentence)
	s.log.Debug("Prediction",
		"tag", prediction.Tag,
		"probability", prediction.Probability,
		"lang", prediction.Lang)

	if prediction.Probability < s.threshold {
		return NotUnderstood, prediction
	}
	responses := s.corpus.Responses(prediction.Tag)
	if len(responses) == 0 {
		return NotUnderstood, prediction
	}
	return responses[s.rng.IntN(len(responses))], prediction
}
