package bootstrap

import (
	"context"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/repository/contract"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/embedding"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/llm"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/rag"
)

// Adapters bridging the concrete providers and the repository onto the
// narrow interfaces pkg/rag consumes, so tests can substitute fakes.

type ragEmbedder struct {
	provider embedding.EmbeddingProvider
}

func (e *ragEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	res, err := e.provider.Generate(ctx, text, embedding.TaskTypeQuery)
	if err != nil {
		return nil, err
	}
	return res.Embedding.Values, nil
}

type ragIndex struct {
	repo contract.EmployeeEmbeddingRepository
}

func (ix *ragIndex) Search(ctx context.Context, vector []float32, limit int) ([]*rag.ScoredDocument, error) {
	rows, err := ix.repo.SearchSimilarWithScore(ctx, vector, limit)
	if err != nil {
		return nil, err
	}

	docs := make([]*rag.ScoredDocument, len(rows))
	for i, row := range rows {
		docs[i] = &rag.ScoredDocument{
			Document: rag.Document{
				Name:            row.Embedding.Name,
				Skills:          row.Embedding.Skills,
				ExperienceYears: row.Embedding.ExperienceYears,
				PastProjects:    row.Embedding.PastProjects,
				Availability:    row.Embedding.Availability,
			},
			Embedding:  row.Embedding.EmbeddingValue,
			Similarity: row.Similarity,
		}
	}
	return docs, nil
}

func (ix *ragIndex) Count(ctx context.Context) (int64, error) {
	return ix.repo.Count(ctx)
}

type ragGenerator struct {
	provider llm.LLMProvider
}

func (g *ragGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	// Low temperature keeps answers grounded in the retrieved context.
	return g.provider.Generate(ctx, prompt, llm.WithTemperature(0.1))
}
