// Package corpus reads the labeled intents file used for training.
package corpus

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Saravanan-32/customer-service-chatbot/domain"
	"github.com/Saravanan-32/customer-service-chatbot/domain/mimetypes"
	apperrors "github.com/Saravanan-32/customer-service-chatbot/errors"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	log *slog.Logger
}

func NewLoader(log *slog.Logger) Loader {
	return Loader{log: log}
}

// Load reads and validates the corpus at path. Nothing is returned unless the whole document is valid.
func (l Loader) Load(path string) (domain.Corpus, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("read corpus %s: %w", path, err)
	}
	c, err := l.Parse(path, content)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("corpus %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes content as JSON or YAML, see mimetypes.Corpus, then checks the schema.
func (l Loader) Parse(path string, content []byte) (domain.Corpus, error) {
	var c domain.Corpus
	format := mimetypes.Corpus(path, content)
	switch format {
	case mimetypes.ApplicationJSON:
		decoder := json.NewDecoder(bytes.NewReader(content))
		if err := decoder.Decode(&c); err != nil {
			return domain.Corpus{}, fmt.Errorf("%w: %w", apperrors.ErrMalformedCorpus, err)
		}
		var trailing json.RawMessage
		if err := decoder.Decode(&trailing); !errors.Is(err, io.EOF) {
			return domain.Corpus{}, fmt.Errorf("%w: unexpected content after the corpus document", apperrors.ErrMalformedCorpus)
		}
	default:
		if err := yaml.Unmarshal(content, &c); err != nil {
			return domain.Corpus{}, fmt.Errorf("%w: %w", apperrors.ErrMalformedCorpus, err)
		}
	}

	if err := c.Validate(); err != nil {
		return domain.Corpus{}, err
	}
	l.log.Debug("Corpus loaded", "format", format, "intents", len(c.Intents), "patterns", c.PatternCount())
	return c, nil
}
