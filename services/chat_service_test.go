package services

import (
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/Saravanan-32/customer-service-chatbot/domain"
	"github.com/Saravanan-32/customer-service-chatbot/inference"
	"github.com/Saravanan-32/customer-service-chatbot/mocks"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChatService_Reply(t *testing.T) {
	chatCorpus := domain.Corpus{Intents: []domain.Intent{
		{Tag: "greeting", Patterns: []string{"Hi"}, Responses: []string{"Hello!", "Hi there"}},
		{Tag: "mute", Patterns: []string{"..."}},
	}}

	tests := []struct {
		name       string
		prediction inference.Prediction
		expected   []string
	}{
		{
			name:       "confident prediction picks a response of the intent",
			prediction: inference.Prediction{Tag: "greeting", Probability: 0.9},
			expected:   []string{"Hello!", "Hi there"},
		},
		{
			name:       "threshold is inclusive",
			prediction: inference.Prediction{Tag: "greeting", Probability: 0.75},
			expected:   []string{"Hello!", "Hi there"},
		},
		{
			name:       "low confidence is not understood",
			prediction: inference.Prediction{Tag: "greeting", Probability: 0.6},
			expected:   []string{NotUnderstood},
		},
		{
			name:       "intent without responses is not understood",
			prediction: inference.Prediction{Tag: "mute", Probability: 0.99},
			expected:   []string{NotUnderstood},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			classifier := mocks.NewMockIClassifier(ctrl)
			classifier.EXPECT().Predict("Hi").Return(tt.prediction)

			service := NewChatService(logs.GetLoggerFromLevel(slog.LevelDebug), classifier, chatCorpus,
				0.75, rand.New(rand.NewPCG(1, 2)))

			answer, prediction := service.Reply("Hi")
			req.Contains(tt.expected, answer)
			req.Equal(tt.prediction, prediction)
		})
	}
}
