package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type EmployeeEmbedding struct {
	Id              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Document        string          `gorm:"type:text"`
	EmbeddingValue  pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text and text-embedding-004 both use 768 dimensions
	Name            string          `gorm:"type:text;not null"`
	Skills          string          `gorm:"type:text"`
	ExperienceYears int             `gorm:"not null"`
	PastProjects    string          `gorm:"type:text"`
	Availability    string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
}

func (EmployeeEmbedding) TableName() string {
	return "employee_embeddings"
}
