package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Saravanan-32/customer-service-chatbot/domain"
	apperrors "github.com/Saravanan-32/customer-service-chatbot/errors"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const modelPrefix = "model:"

// ModelSummary describes a stored model without its weights.
type ModelSummary struct {
	Key        string
	ID         uuid.UUID
	CreatedAt  time.Time
	InputSize  int
	HiddenSize int
	OutputSize int
	Tags       []string
	Checksum   string
}

type IModelRepository interface {
	IArtifactStore
	Latest() (domain.Artifact, error)
	List(limit int) ([]ModelSummary, error)
	Delete(id uuid.UUID) error
}

// ModelRepository is a registry of every trained artifact, kept in BadgerDB.
type ModelRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewModelRepository(db *badger.DB, log *slog.Logger) *ModelRepository {
	return &ModelRepository{db: db, log: log}
}

func (m ModelRepository) Name() string {
	return "badger registry"
}

// Save stores the artifact under "model:{created_at_padded}:{id}".
// The 19-digit zero padding keeps lexicographical order chronological.
func (m ModelRepository) Save(artifact domain.Artifact) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(modelKey(artifact)), data)
	})
}

// Latest returns the most recently created artifact.
func (m ModelRepository) Latest() (domain.Artifact, error) {
	var artifact domain.Artifact
	found := false
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(modelPrefix)
		it.Seek(append(prefix, []byte("9999999999999999999")...))
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		found = true
		return it.Item().Value(func(v []byte) error {
			return json.Unmarshal(v, &artifact)
		})
	})
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("error during latest model fetch: %w", err)
	}
	if !found {
		return domain.Artifact{}, apperrors.ErrModelNotFound
	}
	return artifact, nil
}

// List returns up to limit summaries, newest first. A limit <= 0 lists everything.
func (m ModelRepository) List(limit int) ([]ModelSummary, error) {
	var summaries []ModelSummary
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(modelPrefix)
		for it.Seek(append(prefix, []byte("9999999999999999999")...)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(summaries) == limit {
				m.log.Debug(fmt.Sprintf("Maximum of %d models reached", limit))
				break
			}
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				var artifact domain.Artifact
				if err := json.Unmarshal(v, &artifact); err != nil {
					return fmt.Errorf("failed to unmarshal model %s: %w", key, err)
				}
				summaries = append(summaries, toModelSummary(key, artifact))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during model listing: %w", err)
	}
	return summaries, nil
}

// Delete removes the model with the given ID from the registry.
// Keys are ordered by creation time, so the ID is matched on the key suffix.
func (m ModelRepository) Delete(id uuid.UUID) error {
	suffix := ":" + id.String()
	return m.db.Update(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)

		prefix := []byte(modelPrefix)
		var key []byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if strings.HasSuffix(string(it.Item().Key()), suffix) {
				key = it.Item().KeyCopy(nil)
				break
			}
		}
		it.Close()

		if key == nil {
			return fmt.Errorf("%w: %s", apperrors.ErrModelNotFound, id)
		}
		m.log.Info("Model deleted", "key", string(key))
		return txn.Delete(key)
	})
}

func modelKey(artifact domain.Artifact) string {
	return fmt.Sprintf("%s%019d:%s", modelPrefix, artifact.CreatedAt.UnixNano(), artifact.ID)
}

func toModelSummary(key string, artifact domain.Artifact) ModelSummary {
	return ModelSummary{
		Key:        key,
		ID:         artifact.ID,
		CreatedAt:  artifact.CreatedAt,
		InputSize:  artifact.InputSize,
		HiddenSize: artifact.HiddenSize,
		OutputSize: artifact.OutputSize,
		Tags:       artifact.Tags,
		Checksum:   artifact.Checksum,
	}
}
