package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Saravanan-32/customer-service-chatbot/ai"
	"github.com/Saravanan-32/customer-service-chatbot/domain"
	"github.com/Saravanan-32/customer-service-chatbot/infrastructure/storage"
	"github.com/Saravanan-32/customer-service-chatbot/nlp"
	"github.com/Saravanan-32/customer-service-chatbot/trainer"
)

type ITrainingService interface {
	Train(ctx context.Context, corpus domain.Corpus) (TrainingReport, error)
}

// TrainingReport summarizes a finished run.
// A store failure does not undo training: it is listed in SaveErrors and the run still succeeds.
type TrainingReport struct {
	Artifact   domain.Artifact
	Result     trainer.Result
	Patterns   int
	Duration   time.Duration
	Saved      []string
	SaveErrors map[string]error
}

type TrainingService struct {
	log       *slog.Logger
	tokenizer nlp.Tokenizer
	stemmer   nlp.Stemmer
	hp        trainer.Hyperparameters
	reporter  trainer.Reporter
	stores    []storage.IArtifactStore
}

func NewTrainingService(log *slog.Logger, hp trainer.Hyperparameters, reporter trainer.Reporter,
	stores ...storage.IArtifactStore) *TrainingService {
	return &TrainingService{
		log:       log,
		tokenizer: nlp.NewTokenizer(),
		stemmer:   nlp.NewStemmer(),
		hp:        hp,
		reporter:  reporter,
		stores:    stores,
	}
}

// Train builds the vocabulary and dataset of the corpus, fits a network and hands the artifact to every store.
func (s TrainingService) Train(ctx context.Context, corpus domain.Corpus) (TrainingReport, error) {
	start := time.Now()

	vocabulary, patterns, err := ai.BuildVocabulary(corpus, s.tokenizer, s.stemmer)
	if err != nil {
		return TrainingReport{}, err
	}
	vectorizer := ai.NewVectorizer(vocabulary.Words, s.tokenizer, s.stemmer)
	dataset, err := ai.NewDataset(patterns, vocabulary, vectorizer)
	if err != nil {
		return TrainingReport{}, err
	}
	s.log.Info("Dataset ready",
		"patterns", dataset.Len(),
		"words", len(vocabulary.Words),
		"tags", len(vocabulary.Tags))

	t, err := trainer.New(s.hp, s.log, s.reporter)
	if err != nil {
		return TrainingReport{}, err
	}
	net := t.NewNetwork(dataset)
	result, err := t.Run(ctx, net, dataset)
	if err != nil {
		return TrainingReport{}, fmt.Errorf("training failed: %w", err)
	}

	artifact := domain.NewArtifact(net.Weights(), vocabulary.Words, vocabulary.Tags, time.Now())
	report := TrainingReport{
		Artifact:   artifact,
		Result:     result,
		Patterns:   dataset.Len(),
		Duration:   time.Since(start),
		SaveErrors: make(map[string]error),
	}
	for _, store := range s.stores {
		if err := store.Save(artifact); err != nil {
			s.log.Error("Failed to save model", "store", store.Name(), "error", err)
			report.SaveErrors[store.Name()] = err
			continue
		}
		report.Saved = append(report.Saved, store.Name())
	}
	return report, nil
}
