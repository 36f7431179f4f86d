package ai

import (
	"slices"
	"testing"

	"github.com/Saravanan-32/customer-service-chatbot/domain"
	apperrors "github.com/Saravanan-32/customer-service-chatbot/errors"
	"github.com/Saravanan-32/customer-service-chatbot/nlp"
	"github.com/stretchr/testify/require"
)

func smallCorpus() domain.Corpus {
	return domain.Corpus{Intents: []domain.Intent{
		{Tag: "greeting", Patterns: []string{"hi", "hello"}},
		{Tag: "goodbye", Patterns: []string{"bye"}},
	}}
}

func build(t *testing.T, corpus domain.Corpus) (Vocabulary, []Pattern, *Vectorizer) {
	tokenizer, stemmer := nlp.NewTokenizer(), nlp.NewStemmer()
	vocabulary, patterns, err := BuildVocabulary(corpus, tokenizer, stemmer)
	require.NoError(t, err)
	return vocabulary, patterns, NewVectorizer(vocabulary.Words, tokenizer, stemmer)
}

func TestBuildVocabulary_SmallCorpus(t *testing.T) {
	req := require.New(t)

	vocabulary, patterns, vectorizer := build(t, smallCorpus())

	req.Equal([]string{"bye", "hello", "hi"}, vocabulary.Words)
	req.Equal([]string{"goodbye", "greeting"}, vocabulary.Tags)
	req.Len(patterns, 3)
	req.Equal([]float64{0.0, 0.0, 1.0}, vectorizer.Vectorize([]string{"hi"}))
	req.Equal([]float64{1.0, 0.0, 0.0}, vectorizer.Vectorize([]string{"bye"}))
}

func TestBuildVocabulary_SortedUniqueWithoutIgnoredWords(t *testing.T) {
	req := require.New(t)
	corpus := domain.Corpus{Intents: []domain.Intent{
		{Tag: "greeting", Patterns: []string{"Hi there!", "Hello, is anyone there?", "Hey."}},
		{Tag: "thanks", Patterns: []string{"Thanks!", "Thank you, that's helpful"}},
		{Tag: "goodbye", Patterns: []string{"Bye", "See you later", "Goodbye"}},
		{Tag: "greeting_again", Patterns: []string{"hi hi hi"}},
	}}

	vocabulary, _, _ := build(t, corpus)

	req.True(slices.IsSorted(vocabulary.Words))
	req.Equal(len(vocabulary.Words), len(slices.Compact(slices.Clone(vocabulary.Words))))
	for _, ignored := range nlp.IgnoreWords {
		req.NotContains(vocabulary.Words, ignored)
	}
	req.True(slices.IsSorted(vocabulary.Tags))
	req.Len(vocabulary.Tags, 4)
}

func TestBuildVocabulary_PunctuationOnlyPattern(t *testing.T) {
	req := require.New(t)
	corpus := domain.Corpus{Intents: []domain.Intent{
		{Tag: "confused", Patterns: []string{"?!", "..."}},
		{Tag: "greeting", Patterns: []string{"hi"}},
	}}

	vocabulary, patterns, vectorizer := build(t, corpus)
	dataset, err := NewDataset(patterns, vocabulary, vectorizer)
	req.NoError(err)

	// Then the punctuation pattern is kept and produces a zero vector
	req.Equal([]string{"hi"}, vocabulary.Words)
	req.Equal(3, dataset.Len())
	example, err := dataset.Get(0)
	req.NoError(err)
	req.Equal([]float64{0.0}, example.Features)
	req.Equal(0, example.Label)
}

func TestBuildVocabulary_RejectsInvalidCorpus(t *testing.T) {
	req := require.New(t)
	_, _, err := BuildVocabulary(domain.Corpus{}, nlp.NewTokenizer(), nlp.NewStemmer())
	req.ErrorIs(err, apperrors.ErrEmptyCorpus)
}

func TestVectorizer_Vectorize(t *testing.T) {
	_, _, vectorizer := build(t, smallCorpus())

	tests := []struct {
		name     string
		tokens   []string
		expected []float64
	}{
		{"Presence only, repetitions do not count", []string{"hi", "hi", "hi"}, []float64{0, 0, 1}},
		{"Case is folded by the stemmer", []string{"HELLO"}, []float64{0, 1, 0}},
		{"Unknown tokens are ignored", []string{"pizza", "bye"}, []float64{1, 0, 0}},
		{"Empty input", nil, []float64{0, 0, 0}},
		{"Every word", []string{"bye", "hello", "hi"}, []float64{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got := vectorizer.Vectorize(tt.tokens)
			req.Len(got, vectorizer.Size())
			req.Equal(tt.expected, got)
			// Idempotent
			req.Equal(got, vectorizer.Vectorize(tt.tokens))
		})
	}
}

func TestVectorizer_Features(t *testing.T) {
	req := require.New(t)
	_, _, vectorizer := build(t, smallCorpus())

	req.Equal([]float64{1, 0, 1}, vectorizer.Features("Hi, bye!"))
}

func TestDataset(t *testing.T) {
	req := require.New(t)
	vocabulary, patterns, vectorizer := build(t, smallCorpus())

	dataset, err := NewDataset(patterns, vocabulary, vectorizer)
	req.NoError(err)

	req.Equal(3, dataset.Len())
	req.Equal(3, dataset.Features())
	req.Equal(2, dataset.Classes())
	for i := 0; i < dataset.Len(); i++ {
		example, err := dataset.Get(i)
		req.NoError(err)
		req.Len(example.Features, len(vocabulary.Words))
		req.GreaterOrEqual(example.Label, 0)
		req.Less(example.Label, len(vocabulary.Tags))
		for _, f := range example.Features {
			req.Contains([]float64{0.0, 1.0}, f)
		}
	}

	// Patterns keep corpus order: "hi" is greeting (label 1), "bye" is goodbye (label 0)
	first, _ := dataset.Get(0)
	last, _ := dataset.Get(2)
	req.Equal(Example{Features: []float64{0, 0, 1}, Label: 1}, first)
	req.Equal(Example{Features: []float64{1, 0, 0}, Label: 0}, last)
}

func TestDataset_OutOfRange(t *testing.T) {
	req := require.New(t)
	vocabulary, patterns, vectorizer := build(t, smallCorpus())
	dataset, err := NewDataset(patterns, vocabulary, vectorizer)
	req.NoError(err)

	for _, i := range []int{-1, 3, 100} {
		_, err := dataset.Get(i)
		req.ErrorIs(err, apperrors.ErrIndexOutOfRange)
	}
}

func TestDataset_GetReturnsCopies(t *testing.T) {
	req := require.New(t)
	vocabulary, patterns, vectorizer := build(t, smallCorpus())
	dataset, err := NewDataset(patterns, vocabulary, vectorizer)
	req.NoError(err)

	example, _ := dataset.Get(0)
	example.Features[0] = 42

	again, _ := dataset.Get(0)
	req.Equal(0.0, again.Features[0])
}
