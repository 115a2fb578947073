package main

import (
	"context"
	"log"
	"time"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/bootstrap"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/config"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/repository/implementation"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/database"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/employee"
)

// Seeds the vector index with synthetic employee profiles: generate,
// wipe the previous dataset, publish one ingest event per profile and
// wait until the consumer has embedded and stored them all.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	if container.IngestService == nil {
		log.Fatal("Ingest pipeline unavailable (check embedding provider configuration)")
	}

	ctx := context.Background()
	repo := implementation.NewEmployeeEmbeddingRepository(gormDB)

	generator := employee.NewGenerator(uint64(cfg.Ingest.Seed))
	profiles := generator.Generate(cfg.Ingest.EmployeeCount)
	log.Printf("Generated %d employee profiles", len(profiles))

	if err := repo.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear previous dataset: %v", err)
	}

	if err := container.IngestService.Consume(ctx); err != nil {
		log.Fatalf("Failed to start ingest consumer: %v", err)
	}

	for _, p := range profiles {
		if err := container.PublisherService.PublishProfile(p); err != nil {
			log.Fatalf("Failed to publish profile %q: %v", p.Name, err)
		}
	}

	want := int64(len(profiles))
	deadline := time.Now().Add(10 * time.Minute)
	for {
		count, err := repo.Count(ctx)
		if err != nil {
			log.Fatalf("Failed to count index documents: %v", err)
		}
		if count >= want {
			log.Printf("✅ Seeded %d employee profiles into the vector index", count)
			return
		}
		if time.Now().After(deadline) {
			log.Fatalf("Timed out waiting for ingestion: %d/%d documents stored", count, want)
		}
		log.Printf("Ingesting... %d/%d", count, want)
		time.Sleep(2 * time.Second)
	}
}
