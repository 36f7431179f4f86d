package ai

import (
	"slices"

	"github.com/Saravanan-32/customer-service-chatbot/domain"
	"github.com/Saravanan-32/customer-service-chatbot/nlp"
	"github.com/samber/lo"
)

// Vocabulary is the closed feature space of a training run.
// Words are sorted unique stems, Tags are sorted unique intent tags: a tag's index is its class label.
type Vocabulary struct {
	Words []string
	Tags  []string
}

// Pattern is a tokenized training utterance with the tag it belongs to.
type Pattern struct {
	Tokens []string
	Tag    string
}

// BuildVocabulary tokenizes every pattern of the corpus and derives the vocabulary.
// Tokens whose unstemmed form is in nlp.IgnoreWords never enter the vocabulary,
// a pattern made only of them is still returned and will produce a zero vector.
func BuildVocabulary(corpus domain.Corpus, tokenizer nlp.Tokenizer, stemmer nlp.Stemmer) (Vocabulary, []Pattern, error) {
	if err := corpus.Validate(); err != nil {
		return Vocabulary{}, nil, err
	}

	var allTokens []string
	patterns := make([]Pattern, 0, corpus.PatternCount())
	tags := make([]string, 0, len(corpus.Intents))
	for _, intent := range corpus.Intents {
		tags = append(tags, intent.Tag)
		for _, sentence := range intent.Patterns {
			tokens := tokenizer.Tokenize(sentence)
			allTokens = append(allTokens, tokens...)
			patterns = append(patterns, Pattern{Tokens: tokens, Tag: intent.Tag})
		}
	}

	kept := lo.Filter(allTokens, func(item string, _ int) bool { return !nlp.IsIgnored(item) })
	words := lo.Uniq(lo.Map(kept, func(item string, _ int) string { return stemmer.Stem(item) }))
	slices.Sort(words)

	tags = lo.Uniq(tags)
	slices.Sort(tags)

	return Vocabulary{Words: words, Tags: tags}, patterns, nil
}

// Label returns the class index of tag.
func (v Vocabulary) Label(tag string) (int, bool) {
	idx, found := slices.BinarySearch(v.Tags, tag)
	return idx, found
}
