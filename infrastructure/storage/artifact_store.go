//go:generate go run go.uber.org/mock/mockgen -source=artifact_store.go -destination=../../mocks/mock_artifact_store.go -package=mocks
package storage

import "github.com/Saravanan-32/customer-service-chatbot/domain"

// IArtifactStore persists a trained model. Implementations write the artifact once and never update it.
type IArtifactStore interface {
	Name() string
	Save(artifact domain.Artifact) error
}
