// Package domain contains core concepts of the intent classifier.
// This file defines the labeled corpus and its schema rules.
// A corpus is validated once at load time and read-only afterwards.
package domain

import (
	"fmt"

	apperrors "github.com/Saravanan-32/customer-service-chatbot/errors"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Intent groups example utterances sharing the same tag.
type Intent struct {
	Tag       string   `json:"tag" yaml:"tag" validate:"required"`
	Patterns  []string `json:"patterns" yaml:"patterns" validate:"required,min=1"`
	Responses []string `json:"responses,omitempty" yaml:"responses,omitempty"`
}

type Corpus struct {
	Intents []Intent `json:"intents" yaml:"intents" validate:"required,min=1,dive"`
}

// Validate checks required fields and tag uniqueness.
func (c Corpus) Validate() error {
	if len(c.Intents) == 0 {
		return apperrors.ErrEmptyCorpus
	}
	for i, intent := range c.Intents {
		if intent.Tag != "" && len(intent.Patterns) == 0 {
			return fmt.Errorf("%w: %w: intent %d (%q)", apperrors.ErrMalformedCorpus, apperrors.ErrNoPatterns, i, intent.Tag)
		}
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrMalformedCorpus, err)
	}
	tags := lo.Map(c.Intents, func(item Intent, _ int) string { return item.Tag })
	if duplicates := lo.FindDuplicates(tags); len(duplicates) > 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrDuplicateTag, duplicates)
	}
	return nil
}

// PatternCount is the number of (pattern, tag) pairs of the corpus.
func (c Corpus) PatternCount() int {
	return lo.SumBy(c.Intents, func(item Intent) int { return len(item.Patterns) })
}

// Responses returns the responses of the given tag.
func (c Corpus) Responses(tag string) []string {
	intent, ok := lo.Find(c.Intents, func(item Intent) bool { return item.Tag == tag })
	if !ok {
		return nil
	}
	return intent.Responses
}
