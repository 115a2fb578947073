package rag

import (
	"context"
	"fmt"
)

const (
	// MaxTopK bounds the result count a caller may request.
	MaxTopK = 20

	// defaultFetchK is how many nearest-neighbor candidates the MMR
	// selection considers before picking the final k.
	defaultFetchK = 20

	// defaultLambda balances query relevance (1.0) against diversity
	// among already-selected results (0.0).
	defaultLambda = 0.5
)

// Retriever fetches the k profiles most relevant to a query using
// Maximal-Marginal-Relevance selection, so that near-duplicate profiles
// do not crowd out distinct ones.
type Retriever struct {
	embedder Embedder
	index    VectorIndex
	fetchK   int
	lambda   float64
}

func NewRetriever(embedder Embedder, index VectorIndex) *Retriever {
	return &Retriever{
		embedder: embedder,
		index:    index,
		fetchK:   defaultFetchK,
		lambda:   defaultLambda,
	}
}

// Retrieve returns up to k documents ordered most relevant first. k is
// clamped to [1, MaxTopK]. Fewer than k documents come back when the
// index holds fewer; an empty index yields an empty slice, not an error.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]Document, error) {
	if k < 1 {
		k = 1
	}
	if k > MaxTopK {
		k = MaxTopK
	}

	queryVec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	fetch := r.fetchK
	if fetch < k {
		fetch = k
	}

	candidates, err := r.index.Search(ctx, queryVec, fetch)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	selected := mmrSelect(queryVec, candidates, k, r.lambda)

	docs := make([]Document, len(selected))
	for i, c := range selected {
		docs[i] = c.Document
	}
	return docs, nil
}
