// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chunk cuts per-article text units into fixed-size windows and
// writes them as one corpus file for downstream NLP consumers.
package chunk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdiddy/lexcorpus/pkg/types"
)

const unitExt = ".txt"

// Unit is one text file from the input directory.
type Unit struct {
	// ID is the filename without its extension.
	ID   string
	Text string
}

// LoadUnits reads every .txt file in dir, in filename order. Directories
// and other files are skipped.
func LoadUnits(dir string) ([]Unit, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading unit directory %s: %w", dir, err)
	}

	var units []Unit
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, unitExt) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading unit %s: %w", name, err)
		}
		units = append(units, Unit{
			ID:   strings.TrimSuffix(name, unitExt),
			Text: string(data),
		})
	}
	return units, nil
}

// ChunkText cuts text into consecutive, non-overlapping windows of size
// characters. The last window may be shorter. Each chunk is tagged
// "<unitID>_<offset>" and has surrounding whitespace trimmed. A window that
// is all whitespace still yields an empty chunk.
func ChunkText(unitID, text string, size int) []types.Chunk {
	if size <= 0 {
		return nil
	}
	runes := []rune(text)
	chunks := make([]types.Chunk, 0, (len(runes)+size-1)/size)
	for off := 0; off < len(runes); off += size {
		end := min(off+size, len(runes))
		chunks = append(chunks, types.Chunk{
			ID:   unitID + "_" + strconv.Itoa(off),
			Text: strings.TrimSpace(string(runes[off:end])),
		})
	}
	return chunks
}

// ChunkUnits chunks every unit and concatenates the results in unit order.
func ChunkUnits(units []Unit, size int) []types.Chunk {
	var all []types.Chunk
	for _, u := range units {
		all = append(all, ChunkText(u.ID, u.Text, size)...)
	}
	return all
}

// ChunkDir loads the units in cfg.InputDir, chunks them and writes the corpus
// to cfg.Output in cfg.Format. It returns the number of chunks written.
func ChunkDir(cfg types.ChunkConfig, w io.Writer) (int, error) {
	size := cfg.ChunkSize
	if size == 0 {
		size = types.DefaultChunkSize
	}
	if size < 0 {
		return 0, fmt.Errorf("chunk size must be positive, got %d", size)
	}

	units, err := LoadUnits(cfg.InputDir)
	if err != nil {
		return 0, err
	}

	chunks := ChunkUnits(units, size)
	if err := Export(cfg.Output, cfg.Format, chunks); err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "wrote %d chunks from %d units to %s\n", len(chunks), len(units), cfg.Output)
	return len(chunks), nil
}
