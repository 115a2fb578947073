package rag

import "context"

// Document is an employee profile as read back from the vector index
// metadata. Skills and PastProjects carry the joined storage format.
type Document struct {
	Name            string
	Skills          string
	ExperienceYears int
	PastProjects    string
	Availability    string
}

// ScoredDocument pairs a document with its stored embedding and its
// similarity to the current query. The embedding is needed by the MMR
// selection step.
type ScoredDocument struct {
	Document   Document
	Embedding  []float32
	Similarity float64
}

// Embedder turns text into a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorIndex is the nearest-neighbor lookup surface of the persistent
// index. Search returns up to limit candidates ordered by decreasing
// similarity to the given vector.
type VectorIndex interface {
	Search(ctx context.Context, vector []float32, limit int) ([]*ScoredDocument, error)
	Count(ctx context.Context) (int64, error)
}

// Generator produces a text completion from a fully-assembled prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
