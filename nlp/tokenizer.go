package nlp

import (
	"unicode"
	"unicode/utf8"

	"github.com/blevesearch/segment"
)

// Tokenizer splits a sentence into word tokens following Unicode word boundaries.
// Whitespace is dropped and every punctuation rune is kept as its own token.
type Tokenizer struct{}

func NewTokenizer() Tokenizer {
	return Tokenizer{}
}

// Tokenize returns the tokens of sentence in order. Case is preserved.
func (t Tokenizer) Tokenize(sentence string) []string {
	tokens := make([]string, 0, len(sentence)/4+1)
	segmenter := segment.NewWordSegmenterDirect([]byte(sentence))
	for segmenter.Segment() {
		text := segmenter.Text()
		if segmenter.Type() != segment.None {
			tokens = append(tokens, text)
			continue
		}
		// Non-word segments: spaces are skipped, symbols split rune by rune.
		for _, r := range text {
			if unicode.IsSpace(r) || r == utf8.RuneError {
				continue
			}
			tokens = append(tokens, string(r))
		}
	}
	return tokens
}
