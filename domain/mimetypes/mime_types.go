package mimetypes

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown         MIME = "unknown"
	TextPlain       MIME = "text/plain"
	ApplicationJSON MIME = "application/json"
	ApplicationYAML MIME = "application/yaml"
)

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// Corpus returns the format of a corpus file.
// The extension wins; otherwise the content is sniffed and anything that is not JSON is read as YAML.
func Corpus(path string, content []byte) MIME {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ApplicationJSON
	case ".yaml", ".yml":
		return ApplicationYAML
	}
	if _, ok := Matches(mimetype.Detect(content).String(), ApplicationJSON); ok {
		return ApplicationJSON
	}
	return ApplicationYAML
}
