package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/entity"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/repository/contract"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/embedding"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/employee"
)

type fakeEmbeddingProvider struct {
	mu        sync.Mutex
	documents []string
	err       error
}

func (f *fakeEmbeddingProvider) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.documents = append(f.documents, text)
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{1, 0, 0}},
	}, nil
}

type memoryEmbeddingRepository struct {
	mu   sync.Mutex
	rows []*entity.EmployeeEmbedding
}

func (r *memoryEmbeddingRepository) CreateBulk(ctx context.Context, embeddings []*entity.EmployeeEmbedding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, embeddings...)
	return nil
}

func (r *memoryEmbeddingRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = nil
	return nil
}

func (r *memoryEmbeddingRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *memoryEmbeddingRepository) SearchSimilarWithScore(ctx context.Context, vec []float32, limit int) ([]*contract.ScoredEmployeeEmbedding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	scored := make([]*contract.ScoredEmployeeEmbedding, 0, len(r.rows))
	for _, row := range r.rows {
		scored = append(scored, &contract.ScoredEmployeeEmbedding{Embedding: row, Similarity: 1})
		if len(scored) == limit {
			break
		}
	}
	return scored, nil
}

func (r *memoryEmbeddingRepository) snapshot() []*entity.EmployeeEmbedding {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.EmployeeEmbedding(nil), r.rows...)
}

func newTestPubSub() *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
}

func TestIngestRoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := newTestPubSub()
	repo := &memoryEmbeddingRepository{}
	provider := &fakeEmbeddingProvider{}

	ingest := NewIngestService(pubSub, "EMBED_EMPLOYEE_PROFILE", repo, provider)
	require.NoError(t, ingest.Consume(ctx))

	publisher := NewPublisherService("EMBED_EMPLOYEE_PROFILE", pubSub)
	profile := employee.Profile{
		Name:            "Ana Lee",
		Skills:          []string{"Python", "AWS"},
		ExperienceYears: 6,
		PastProjects:    []string{"Healthcare Dashboard"},
		Availability:    employee.AvailabilityAvailable,
	}
	require.NoError(t, publisher.PublishProfile(profile))

	require.Eventually(t, func() bool {
		n, _ := repo.Count(ctx)
		return n == 1
	}, 5*time.Second, 10*time.Millisecond, "consumer should store the published profile")

	rows := repo.snapshot()
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "Ana Lee", row.Name)
	assert.Equal(t, "Python, AWS", row.Skills)
	assert.Equal(t, 6, row.ExperienceYears)
	assert.Equal(t, "Healthcare Dashboard", row.PastProjects)
	assert.Equal(t, employee.AvailabilityAvailable, row.Availability)
	assert.Equal(t, profile.Document(), row.Document)
	assert.Equal(t, []float32{1, 0, 0}, row.EmbeddingValue)

	provider.mu.Lock()
	defer provider.mu.Unlock()
	require.Len(t, provider.documents, 1)
	assert.Contains(t, provider.documents[0], "Skills: Python, AWS.")
}

func TestIngestSkipsMalformedMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := newTestPubSub()
	repo := &memoryEmbeddingRepository{}
	provider := &fakeEmbeddingProvider{}

	ingest := NewIngestService(pubSub, "EMBED_EMPLOYEE_PROFILE", repo, provider)
	require.NoError(t, ingest.Consume(ctx))

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	require.NoError(t, pubSub.Publish("EMBED_EMPLOYEE_PROFILE", msg))

	// A valid message published afterwards must still be processed,
	// proving the malformed one was acked rather than redelivered.
	publisher := NewPublisherService("EMBED_EMPLOYEE_PROFILE", pubSub)
	require.NoError(t, publisher.PublishProfile(employee.Profile{
		Name:         "Ravi Kumar",
		Skills:       []string{"Go"},
		Availability: employee.AvailabilityFullyBooked,
	}))

	require.Eventually(t, func() bool {
		n, _ := repo.Count(ctx)
		return n == 1
	}, 5*time.Second, 10*time.Millisecond)

	rows := repo.snapshot()
	require.Len(t, rows, 1)
	assert.Equal(t, "Ravi Kumar", rows[0].Name)
}
