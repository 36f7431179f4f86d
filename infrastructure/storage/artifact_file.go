package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Saravanan-32/customer-service-chatbot/domain"
)

// ArtifactFile writes the artifact as a single JSON document.
type ArtifactFile struct {
	path string
	log  *slog.Logger
}

func NewArtifactFile(path string, log *slog.Logger) ArtifactFile {
	return ArtifactFile{path: path, log: log}
}

func (f ArtifactFile) Name() string {
	return f.path
}

// Save writes to a temporary file next to the target then renames it,
// a failed write never leaves a truncated artifact behind.
func (f ArtifactFile) Save(artifact domain.Artifact) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create artifact file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(artifact); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to encode artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to move artifact in place: %w", err)
	}
	f.log.Debug("Artifact written", "path", f.path, "id", artifact.ID)
	return nil
}

// Load reads an artifact. Callers verify it before use.
func (f ArtifactFile) Load() (domain.Artifact, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("failed to read artifact: %w", err)
	}
	var artifact domain.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return domain.Artifact{}, fmt.Errorf("failed to decode artifact %s: %w", f.path, err)
	}
	return artifact, nil
}
