package chunker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"
)

// Mode selects the chunk-boundary strategy.
type Mode string

const (
	// ModeSimple splits on a single separator, packing pieces up to the
	// chunk size with a character-budget overlap carried between chunks.
	ModeSimple Mode = "simple"
	// ModeRecursive tries progressively finer structural boundaries
	// (paragraph, line, word) before falling back to raw character cuts.
	ModeRecursive Mode = "recursive"
)

// NewSplitter builds the text splitter for a mode. Both modes honor the
// same chunk size and overlap budget, expressed in characters.
func NewSplitter(mode Mode, chunkSize, chunkOverlap int) (textsplitter.TextSplitter, error) {
	if chunkSize <= 0 {
		return nil, errors.New("chunk size must be > 0")
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return nil, errors.New("chunk overlap must be >= 0 and < chunk size")
	}

	switch mode {
	case ModeSimple:
		return CharacterSplitter{
			Separator:    " ",
			ChunkSize:    chunkSize,
			ChunkOverlap: chunkOverlap,
		}, nil
	case ModeRecursive, "":
		rc := textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(chunkSize),
			textsplitter.WithChunkOverlap(chunkOverlap),
		)
		return rc, nil
	default:
		return nil, fmt.Errorf("unsupported splitter mode: %s", mode)
	}
}

// CharacterSplitter is the single-separator splitter. Pieces are packed up
// to ChunkSize characters; when a chunk closes, trailing pieces totaling at
// most ChunkOverlap characters are carried into the next chunk, so overlap
// falls on separator boundaries.
type CharacterSplitter struct {
	Separator    string
	ChunkSize    int
	ChunkOverlap int
}

// SplitText implements textsplitter.TextSplitter.
func (s CharacterSplitter) SplitText(text string) ([]string, error) {
	if s.ChunkSize <= 0 {
		return nil, errors.New("chunk size must be > 0")
	}
	if s.ChunkOverlap < 0 || s.ChunkOverlap >= s.ChunkSize {
		return nil, errors.New("chunk overlap must be >= 0 and < chunk size")
	}
	sep := s.Separator
	if sep == "" {
		sep = " "
	}

	var parts []string
	for _, p := range strings.Split(text, sep) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil, nil
	}

	var chunks []string
	var window []string
	winLen := 0

	for _, p := range parts {
		if len(window) > 0 && winLen+len(sep)+len(p) > s.ChunkSize {
			chunks = append(chunks, strings.Join(window, sep))

			// Keep the overlap tail, and make room for the incoming piece.
			for len(window) > 0 && (winLen > s.ChunkOverlap || winLen+len(sep)+len(p) > s.ChunkSize) {
				winLen -= len(window[0])
				if len(window) > 1 {
					winLen -= len(sep)
				}
				window = window[1:]
			}
		}

		if len(window) == 0 {
			winLen = len(p)
		} else {
			winLen += len(sep) + len(p)
		}
		window = append(window, p)
	}

	if len(window) > 0 {
		chunks = append(chunks, strings.Join(window, sep))
	}
	return chunks, nil
}
