package implementation

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/entity"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/mapper"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/model"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/repository/contract"
)

type EmployeeEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmployeeEmbeddingMapper
}

func NewEmployeeEmbeddingRepository(db *gorm.DB) contract.EmployeeEmbeddingRepository {
	return &EmployeeEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmployeeEmbeddingMapper(),
	}
}

func (r *EmployeeEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.EmployeeEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.EmployeeEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	// Update generated IDs back to entities
	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

// DeleteAll wipes the index. Seed runs regenerate the dataset wholesale,
// rows are never mutated in place.
func (r *EmployeeEmbeddingRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM employee_embeddings").Error
}

func (r *EmployeeEmbeddingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.EmployeeEmbedding{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns rows with their similarity scores.
// Cosine distance in pgvector is 1 - cosine_similarity, so we select
// 1 - (embedding_value <=> query_vector) as the similarity.
func (r *EmployeeEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredEmployeeEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.EmployeeEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("employee_embeddings").
		Select("employee_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredEmployeeEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredEmployeeEmbedding{
			Embedding:  r.mapper.ToEntity(&res.EmployeeEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
