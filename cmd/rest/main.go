package main

import (
	"context"
	"log"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/bootstrap"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/config"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/server"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/tracer"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	// A failed connection degrades search instead of aborting: the /chat
	// and /employees/search endpoints answer with explanatory errors.
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Printf("[WARN] Unable to connect to database, starting degraded: %v", err)
		gormDB = nil
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Start Background Ingest Consumer
	if container.IngestService != nil {
		go func() {
			log.Println("Background: Starting Ingest Consumer...")
			if err := container.IngestService.Consume(context.Background()); err != nil {
				log.Printf("Background Ingest Consumer Error: %v", err)
			}
		}()
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
