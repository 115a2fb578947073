package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeEmbedding is one indexed document: the embedded textual
// representation of a profile plus its metadata fields. Rows are
// append-only; reseeding wipes and recreates them wholesale.
type EmployeeEmbedding struct {
	Id              uuid.UUID
	Document        string
	EmbeddingValue  []float32
	Name            string
	Skills          string
	ExperienceYears int
	PastProjects    string
	Availability    string
	CreatedAt       time.Time
}
