package contract

import (
	"context"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/entity"
)

// ScoredEmployeeEmbedding pairs a stored embedding row with its cosine
// similarity to a query vector.
type ScoredEmployeeEmbedding struct {
	Embedding  *entity.EmployeeEmbedding
	Similarity float64
}

type EmployeeEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.EmployeeEmbedding) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)

	// SearchSimilarWithScore returns up to limit rows ordered by
	// decreasing cosine similarity to the given vector.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredEmployeeEmbedding, error)
}
