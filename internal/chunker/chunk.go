package chunker

// Record is a single chunk extracted from a document, carrying enough
// position metadata to reconstruct reading order. Records are immutable
// once emitted and serialize one-per-line in JSONL output.
type Record struct {
	ChunkID          string            `json:"chunk_id"`
	Text             string            `json:"text"`
	Page             int               `json:"page"`               // 1-indexed page number
	PageChunkIndex   int               `json:"page_chunk_index"`   // 0-indexed within the page
	GlobalChunkIndex int               `json:"global_chunk_index"` // 0-indexed across the document
	Meta             map[string]string `json:"meta"`
}

// Page is one page of loaded document text. Number is 1-indexed.
type Page struct {
	Number int
	Text   string
}

// PageLoader loads a document into ordered per-page texts. Implementations
// surface parse failures unchanged; the pipeline handles missing paths
// before the loader runs.
type PageLoader interface {
	Load(path string) ([]Page, error)
}
