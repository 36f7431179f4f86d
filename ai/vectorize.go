package ai

import (
	"github.com/Saravanan-32/customer-service-chatbot/nlp"
)

// Vectorizer transforms tokens into fixed-size bag-of-words vectors over a closed vocabulary.
type Vectorizer struct {
	words     []string
	index     map[string]int
	tokenizer nlp.Tokenizer
	stemmer   nlp.Stemmer
}

// NewVectorizer indexes words in the given order.
// The order must be the one stored with the model, feature i is words[i].
func NewVectorizer(words []string, tokenizer nlp.Tokenizer, stemmer nlp.Stemmer) *Vectorizer {
	index := make(map[string]int, len(words))
	for i, w := range words {
		index[w] = i
	}
	return &Vectorizer{words: words, index: index, tokenizer: tokenizer, stemmer: stemmer}
}

func (v *Vectorizer) Size() int {
	return len(v.words)
}

// Vectorize stems the tokens and sets 1.0 on each vocabulary word present.
// Repetitions do not count and unknown stems are ignored.
func (v *Vectorizer) Vectorize(tokens []string) []float64 {
	vec := make([]float64, len(v.words))
	for _, token := range tokens {
		if idx, ok := v.index[v.stemmer.Stem(token)]; ok {
			vec[idx] = 1.0
		}
	}
	return vec
}

// Features tokenizes a raw sentence then vectorizes it.
func (v *Vectorizer) Features(sentence string) []float64 {
	return v.Vectorize(v.tokenizer.Tokenize(sentence))
}
