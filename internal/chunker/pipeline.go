package chunker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Options configures one pipeline run. Zero values mean "use the default";
// the overlap default scales down when the chunk size leaves no room for it.
type Options struct {
	ChunkSize    int  // target characters per chunk (default 1000)
	ChunkOverlap int  // overlap characters between chunks (default 200)
	Mode         Mode // splitter mode (default recursive)
	// Pages optionally restricts the run to a set of 0-based page indices.
	// Nil means all pages.
	Pages map[int]bool
}

func (o Options) withDefaults() Options {
	if o.ChunkSize == 0 {
		o.ChunkSize = 1000
	}
	if o.ChunkOverlap == 0 {
		o.ChunkOverlap = 200
		if o.ChunkOverlap >= o.ChunkSize {
			// Keep the overlap below the chunk size for small chunks.
			o.ChunkOverlap = o.ChunkSize / 5
		}
	}
	if o.Mode == "" {
		o.Mode = ModeRecursive
	}
	return o
}

// Pipeline turns a document into an ordered stream of chunk records. A run
// holds no state between invocations: re-running over the same source with
// the same options yields identical text and indices (chunk ids are fresh).
type Pipeline struct {
	loader PageLoader
	opts   Options
}

// NewPipeline creates a Pipeline over the given loader.
func NewPipeline(loader PageLoader, opts Options) *Pipeline {
	return &Pipeline{loader: loader, opts: opts.withDefaults()}
}

// Run streams chunk records in document order through emit. Blank pages are
// skipped without consuming an index; the global index increases strictly
// by 1 over emitted records only. Returns a not-found error when the source
// path does not exist; loader failures surface unchanged.
func (p *Pipeline) Run(ctx context.Context, path string, emit func(Record) error) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document not found: %s: %w", path, os.ErrNotExist)
		}
		return err
	}

	pages, err := p.loader.Load(path)
	if err != nil {
		return err
	}

	splitter, err := NewSplitter(p.opts.Mode, p.opts.ChunkSize, p.opts.ChunkOverlap)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	globalIdx := 0
	for pageIdx, page := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.opts.Pages != nil && !p.opts.Pages[pageIdx] {
			continue
		}
		if strings.TrimSpace(page.Text) == "" {
			continue
		}

		chunks, err := splitter.SplitText(page.Text)
		if err != nil {
			return err
		}

		for pageChunkIdx, text := range chunks {
			rec := Record{
				ChunkID:          uuid.NewString(),
				Text:             text,
				Page:             page.Number,
				PageChunkIndex:   pageChunkIdx,
				GlobalChunkIndex: globalIdx,
				Meta: map[string]string{
					"source":      absPath,
					"total_pages": strconv.Itoa(len(pages)),
				},
			}
			if err := emit(rec); err != nil {
				return err
			}
			globalIdx++
		}
	}
	return nil
}

// WriteJSONL runs the pipeline and writes one JSON object per line to
// outPath, creating parent directories and truncating any existing file.
// Production and writing run concurrently. Returns the number of records
// written.
func (p *Pipeline) WriteJSONL(ctx context.Context, srcPath, outPath string) (int, error) {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	records := make(chan Record)
	count := 0

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(records)
		return p.Run(gctx, srcPath, func(rec Record) error {
			select {
			case records <- rec:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})
	g.Go(func() error {
		enc := json.NewEncoder(out)
		for rec := range records {
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("failed to encode chunk record: %w", err)
			}
			count++
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return count, err
	}
	return count, nil
}
