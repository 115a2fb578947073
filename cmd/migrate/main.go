package main

import (
	"log"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/config"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/model"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("Failed to create pgvector extension: %v", err)
	}

	if err := db.AutoMigrate(&model.EmployeeEmbedding{}); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	// ivfflat needs rows to build useful lists; creating it up front is
	// still fine for a dataset this small.
	if err := db.Exec(
		"CREATE INDEX IF NOT EXISTS idx_employee_embeddings_cosine ON employee_embeddings USING ivfflat (embedding_value vector_cosine_ops) WITH (lists = 10)",
	).Error; err != nil {
		log.Fatalf("Failed to create vector index: %v", err)
	}

	log.Println("✅ Migration complete")
}
