package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/dto"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/entity"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/repository/contract"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/embedding"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/employee"
)

// IIngestService consumes employee-profile events, embeds the profile
// document and stores the (vector, metadata) row in the index.
type IIngestService interface {
	Consume(ctx context.Context) error
}

type ingestService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	repo              contract.EmployeeEmbeddingRepository
	embeddingProvider embedding.EmbeddingProvider
}

func NewIngestService(
	pubSub *gochannel.GoChannel,
	topicName string,
	repo contract.EmployeeEmbeddingRepository,
	embeddingProvider embedding.EmbeddingProvider,
) IIngestService {
	return &ingestService{
		pubSub:            pubSub,
		topicName:         topicName,
		repo:              repo,
		embeddingProvider: embeddingProvider,
	}
}

func (is *ingestService) Consume(ctx context.Context) error {
	messages, err := is.pubSub.Subscribe(ctx, is.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			is.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (is *ingestService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmployeeProfileMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal ingest message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	profile := payload.Profile
	document := profile.Document()

	res, err := is.embeddingProvider.Generate(ctx, document, embedding.TaskTypeDocument)
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for %q: %v", profile.Name, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	row := &entity.EmployeeEmbedding{
		Id:              uuid.New(),
		Document:        document,
		EmbeddingValue:  res.Embedding.Values,
		Name:            profile.Name,
		Skills:          employee.JoinList(profile.Skills),
		ExperienceYears: profile.ExperienceYears,
		PastProjects:    employee.JoinList(profile.PastProjects),
		Availability:    profile.Availability,
		CreatedAt:       time.Now(),
	}

	if err := is.repo.CreateBulk(ctx, []*entity.EmployeeEmbedding{row}); err != nil {
		log.Printf("[ERROR] Failed to store embedding for %q: %v", profile.Name, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
