// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chunk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lexcorpus/pkg/types"
)

// Export writes chunks to path in the given format. An empty format means JSON.
func Export(path string, format types.ExportFormat, chunks []types.Chunk) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case types.FormatJSON, "":
		data, err = MarshalJSON(chunks)
	case types.FormatYAML:
		data, err = MarshalYAML(chunks)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// MarshalJSON renders chunks as a JSON array indented by four spaces, with
// HTML characters left unescaped.
func MarshalJSON(chunks []types.Chunk) ([]byte, error) {
	if chunks == nil {
		chunks = []types.Chunk{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(chunks); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalYAML renders chunks as a YAML sequence.
func MarshalYAML(chunks []types.Chunk) ([]byte, error) {
	if chunks == nil {
		chunks = []types.Chunk{}
	}
	data, err := yaml.Marshal(chunks)
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return data, nil
}
