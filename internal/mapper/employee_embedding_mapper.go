package mapper

import (
	"github.com/pgvector/pgvector-go"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/entity"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/model"
)

type EmployeeEmbeddingMapper struct{}

func NewEmployeeEmbeddingMapper() *EmployeeEmbeddingMapper {
	return &EmployeeEmbeddingMapper{}
}

func (m *EmployeeEmbeddingMapper) ToModel(e *entity.EmployeeEmbedding) *model.EmployeeEmbedding {
	return &model.EmployeeEmbedding{
		Id:              e.Id,
		Document:        e.Document,
		EmbeddingValue:  pgvector.NewVector(e.EmbeddingValue),
		Name:            e.Name,
		Skills:          e.Skills,
		ExperienceYears: e.ExperienceYears,
		PastProjects:    e.PastProjects,
		Availability:    e.Availability,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *EmployeeEmbeddingMapper) ToEntity(mo *model.EmployeeEmbedding) *entity.EmployeeEmbedding {
	return &entity.EmployeeEmbedding{
		Id:              mo.Id,
		Document:        mo.Document,
		EmbeddingValue:  mo.EmbeddingValue.Slice(),
		Name:            mo.Name,
		Skills:          mo.Skills,
		ExperienceYears: mo.ExperienceYears,
		PastProjects:    mo.PastProjects,
		Availability:    mo.Availability,
		CreatedAt:       mo.CreatedAt,
	}
}
