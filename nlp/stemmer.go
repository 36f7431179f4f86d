package nlp

import (
	"strings"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
)

// IgnoreWords are tokens dropped from the vocabulary, compared before stemming.
var IgnoreWords = []string{"?", "!", ".", ","}

// IsIgnored reports whether the unstemmed token belongs to IgnoreWords.
func IsIgnored(token string) bool {
	for _, w := range IgnoreWords {
		if token == w {
			return true
		}
	}
	return false
}

// Stemmer lower-cases a token and reduces it to its Porter stem.
type Stemmer struct{}

func NewStemmer() Stemmer {
	return Stemmer{}
}

func (s Stemmer) Stem(token string) string {
	return porterstemmer.StemString(strings.ToLower(token))
}
