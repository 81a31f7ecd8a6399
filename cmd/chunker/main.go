package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"quizforge/internal/chunker"

	"github.com/spf13/cobra"
)

var (
	chunkSize    int
	chunkOverlap int
	splitterMode string
	startPage    int
	endPage      int
	jsonlPath    string
)

var rootCmd = &cobra.Command{
	Use:   "chunker [pdf]",
	Short: "Chunk a PDF into overlapping text pieces",
	Long: `Chunk a large PDF into overlapping text chunks for retrieval-style
workflows. Each chunk carries its page number, its position within the page
and a strictly increasing global index. Without --jsonl a per-chunk preview
is printed; with --jsonl the chunks are written one JSON object per line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfPath := args[0]

		opts := chunker.Options{
			ChunkSize:    chunkSize,
			ChunkOverlap: chunkOverlap,
			Mode:         chunker.Mode(splitterMode),
		}

		// Convert the 1-indexed inclusive page range to 0-based indices.
		if startPage > 0 || endPage > 0 {
			start := 0
			if startPage > 0 {
				start = startPage - 1
			}
			end := endPage - 1
			if endPage <= 0 {
				loader := chunker.NewPDFLoader()
				pages, err := loader.Load(pdfPath)
				if err != nil {
					return err
				}
				end = len(pages) - 1
			}
			opts.Pages = make(map[int]bool)
			for i := start; i <= end; i++ {
				opts.Pages[i] = true
			}
		}

		pipeline := chunker.NewPipeline(chunker.NewPDFLoader(), opts)
		ctx := context.Background()

		if jsonlPath != "" {
			fmt.Printf("Saving chunks to %s ...\n", jsonlPath)
			count, err := pipeline.WriteJSONL(ctx, pdfPath, jsonlPath)
			if err != nil {
				return err
			}
			fmt.Printf("Saved %d chunks.\n", count)
			return nil
		}

		count := 0
		err := pipeline.Run(ctx, pdfPath, func(rec chunker.Record) error {
			preview := rec.Text
			if runes := []rune(preview); len(runes) > 120 {
				preview = string(runes[:120])
			}
			preview = strings.TrimSpace(strings.ReplaceAll(preview, "\n", " "))
			fmt.Printf("[G#%d] page %d chunk %d: %s...\n",
				rec.GlobalChunkIndex, rec.Page, rec.PageChunkIndex, preview)
			count++
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Printf("Total chunks: %d\n", count)
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVarP(&chunkSize, "chunk-size", "s", 1000, "Approximate number of characters per chunk")
	rootCmd.Flags().IntVarP(&chunkOverlap, "overlap", "o", 200, "Number of overlapping characters between consecutive chunks")
	rootCmd.Flags().StringVar(&splitterMode, "splitter", "recursive", "Which text splitter to use: recursive or simple")
	rootCmd.Flags().IntVar(&startPage, "start-page", 0, "1-indexed start page to include")
	rootCmd.Flags().IntVar(&endPage, "end-page", 0, "1-indexed end page to include (inclusive)")
	rootCmd.Flags().StringVarP(&jsonlPath, "jsonl", "j", "", "If provided, save chunks to this JSONL path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
