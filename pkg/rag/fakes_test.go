package rag

import (
	"context"
	"sort"
)

// fakeEmbedder returns a canned vector per query string.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float32{1, 0, 0}, nil
}

// fakeIndex is an in-memory VectorIndex ranking documents by cosine
// similarity, like the pgvector-backed implementation does.
type fakeIndex struct {
	docs      []*ScoredDocument
	lastLimit int
}

func (f *fakeIndex) Search(ctx context.Context, vector []float32, limit int) ([]*ScoredDocument, error) {
	f.lastLimit = limit

	out := make([]*ScoredDocument, 0, len(f.docs))
	for _, d := range f.docs {
		out = append(out, &ScoredDocument{
			Document:   d.Document,
			Embedding:  d.Embedding,
			Similarity: cosineSimilarity(vector, d.Embedding),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeIndex) Count(ctx context.Context) (int64, error) {
	return int64(len(f.docs)), nil
}

// fakeGenerator echoes the prompt so tests can inspect what the
// generation step received.
type fakeGenerator struct {
	lastPrompt string
	reply      string
	err        error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastPrompt = prompt
	if f.reply != "" {
		return f.reply, nil
	}
	return prompt, nil
}
