package service

import (
	"context"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/dto"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/pkg/logger"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/rag"
)

// IAssistantService is the request-facing surface over the RAG system.
type IAssistantService interface {
	Chat(ctx context.Context, query string) (*dto.ChatResponse, error)
	SearchEmployees(ctx context.Context, query string, topK int) (*dto.EmployeeSearchResponse, error)
}

type assistantService struct {
	ragSystem *rag.System
	sysLogger logger.ILogger
}

func NewAssistantService(ragSystem *rag.System, sysLogger logger.ILogger) IAssistantService {
	return &assistantService{
		ragSystem: ragSystem,
		sysLogger: sysLogger,
	}
}

func (as *assistantService) Chat(ctx context.Context, query string) (*dto.ChatResponse, error) {
	answer, err := as.ragSystem.Answer(ctx, query)
	if err != nil {
		as.sysLogger.Error("assistant", "chat query failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return &dto.ChatResponse{Response: answer}, nil
}

func (as *assistantService) SearchEmployees(ctx context.Context, query string, topK int) (*dto.EmployeeSearchResponse, error) {
	docs, err := as.ragSystem.Search(ctx, query, topK)
	if err != nil {
		as.sysLogger.Error("assistant", "employee search failed", map[string]interface{}{
			"error": err.Error(),
			"top_k": topK,
		})
		return nil, err
	}

	employees := make([]dto.EmployeeResponse, len(docs))
	for i, doc := range docs {
		employees[i] = dto.EmployeeResponse{
			Name:            doc.Name,
			Skills:          doc.Skills,
			ExperienceYears: doc.ExperienceYears,
			PastProjects:    doc.PastProjects,
			Availability:    doc.Availability,
		}
	}

	return &dto.EmployeeSearchResponse{
		Employees: employees,
		Message:   "Search completed.",
	}, nil
}
