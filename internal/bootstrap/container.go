package bootstrap

import (
	"context"
	"errors"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/config"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/controller"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/pkg/logger"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/repository/implementation"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/service"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/embedding"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/llm/factory"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/rag"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	EmployeeController controller.IEmployeeController

	// Background services (exposed for main/seed to run)
	IngestService    service.IIngestService
	PublisherService service.IPublisherService

	// Core
	RAG    *rag.System
	Logger logger.ILogger
}

// NewContainer wires every sub-component. Construction failures of the
// embedding provider, index or LLM are logged and recorded, never fatal:
// the process starts in degraded mode and surfaces explanatory errors on
// the affected endpoints, keeping the others usable.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus for the ingestion pipeline
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// Embedding provider
	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "gemini":
		if cfg.Ai.GeminiAPIKey == "" {
			sysLogger.Warn("bootstrap", "gemini embedding provider selected but GOOGLE_GEMINI_API_KEY is empty", nil)
		} else {
			embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
			log.Printf("[INFO] Using Embedding Provider: GEMINI")
		}
	default:
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	}

	// LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		sysLogger.Warn("bootstrap", "failed to initialize LLM provider, generation disabled", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"error":    err.Error(),
		})
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// RAG system composition: pass along whatever initialized
	components := rag.Components{}
	if embeddingProvider != nil {
		components.Embedder = &ragEmbedder{provider: embeddingProvider}
	}
	if db != nil {
		components.Index = &ragIndex{repo: implementation.NewEmployeeEmbeddingRepository(db)}
	} else {
		sysLogger.Warn("bootstrap", "database unavailable, vector index disabled", nil)
	}
	if llmProvider != nil {
		components.Generator = &ragGenerator{provider: llmProvider}
	}

	ragSystem := rag.NewSystem(components)
	for _, initErr := range ragSystem.InitErrors() {
		sysLogger.Warn("bootstrap", "rag sub-component unavailable", map[string]interface{}{
			"error": initErr.Error(),
		})
	}
	sysLogger.Info("bootstrap", "rag system constructed", map[string]interface{}{
		"state":          ragSystem.State().String(),
		"index_ready":    ragSystem.IndexReady(),
		"pipeline_ready": ragSystem.PipelineReady(),
	})

	if count, err := ragSystem.DocumentCount(context.Background()); err == nil {
		if count == 0 {
			sysLogger.Warn("bootstrap", "vector index is empty, run the seeder to populate it", nil)
		} else {
			sysLogger.Info("bootstrap", "vector index loaded", map[string]interface{}{
				"documents": count,
			})
		}
	} else if !errors.Is(err, rag.ErrIndexNotReady) {
		sysLogger.Warn("bootstrap", "could not count index documents", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Ingestion pipeline
	var ingestService service.IIngestService
	if db != nil && embeddingProvider != nil {
		ingestService = service.NewIngestService(
			pubSub,
			cfg.Ingest.TopicName,
			implementation.NewEmployeeEmbeddingRepository(db),
			embeddingProvider,
		)
	}
	publisherService := service.NewPublisherService(cfg.Ingest.TopicName, pubSub)

	assistantService := service.NewAssistantService(ragSystem, sysLogger)

	return &Container{
		ChatController:     controller.NewChatController(assistantService),
		EmployeeController: controller.NewEmployeeController(assistantService),
		IngestService:      ingestService,
		PublisherService:   publisherService,
		RAG:                ragSystem,
		Logger:             sysLogger,
	}
}
