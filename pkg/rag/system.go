package rag

import (
	"context"
	"fmt"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/rag/prompt"
)

// State is the lifecycle state of the system after construction.
type State int

const (
	StateUninitialized State = iota
	StateReady
	StateDegraded
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateDegraded:
		return "degraded"
	default:
		return "uninitialized"
	}
}

// answerTopK is the fixed context size of the generation path. The
// caller-specified top_k only applies to direct search; the answer
// pipeline always retrieves 5 profiles so prompt size stays bounded.
const answerTopK = 5

// Components are the externally-constructed sub-components the system
// composes. Any of them may be nil when its construction failed at
// startup; the system then degrades the capabilities that need it
// instead of refusing to start.
type Components struct {
	Embedder  Embedder
	Index     VectorIndex
	Generator Generator
}

// System wires retrieval, context formatting, prompt assembly and
// generation into the two public operations, Answer and Search. It is
// built once at startup and is safe for concurrent use: all fields are
// read-only after construction.
type System struct {
	retriever  *Retriever
	index      VectorIndex
	generator  Generator
	state      State
	initErrors []error
}

// NewSystem composes whichever sub-components are present. Missing
// pieces are recorded, not fatal: search stays available without a
// generation model, and vice versa nothing works but the process serves
// explanatory errors instead of crashing.
func NewSystem(c Components) *System {
	s := &System{
		index:     c.Index,
		generator: c.Generator,
	}

	if c.Embedder == nil {
		s.initErrors = append(s.initErrors, fmt.Errorf("embedding function not available"))
	}
	if c.Index == nil {
		s.initErrors = append(s.initErrors, fmt.Errorf("vector index not available"))
	}
	if c.Generator == nil {
		s.initErrors = append(s.initErrors, fmt.Errorf("generation model not available"))
	}

	if c.Embedder != nil && c.Index != nil {
		s.retriever = NewRetriever(c.Embedder, c.Index)
	}

	if len(s.initErrors) == 0 {
		s.state = StateReady
	} else {
		s.state = StateDegraded
	}
	return s
}

// State reports the lifecycle state computed at construction.
func (s *System) State() State {
	return s.state
}

// InitErrors lists the sub-component failures recorded at construction.
func (s *System) InitErrors() []error {
	return s.initErrors
}

// IndexReady reports whether the search capability is available.
func (s *System) IndexReady() bool {
	return s.retriever != nil
}

// PipelineReady reports whether the full answer pipeline is available.
func (s *System) PipelineReady() bool {
	return s.retriever != nil && s.generator != nil
}

// Answer runs the full pipeline: retrieve, format, prompt, generate.
// Returns ErrPipelineNotReady when the pipeline was never built.
func (s *System) Answer(ctx context.Context, query string) (string, error) {
	if !s.PipelineReady() {
		return "", ErrPipelineNotReady
	}

	docs, err := s.retriever.Retrieve(ctx, query, answerTopK)
	if err != nil {
		return "", err
	}

	contextBlock := FormatDocuments(docs)
	p := prompt.NewBuilder(contextBlock, query).Build()

	return s.generator.Generate(ctx, p)
}

// Search retrieves up to k profiles for the query, bypassing generation.
// Returns ErrIndexNotReady when the index was never built. An empty
// result on a populated system means "no matches", never "unavailable".
func (s *System) Search(ctx context.Context, query string, k int) ([]Document, error) {
	if !s.IndexReady() {
		return nil, ErrIndexNotReady
	}
	return s.retriever.Retrieve(ctx, query, k)
}

// DocumentCount reports how many profiles the index holds.
func (s *System) DocumentCount(ctx context.Context) (int64, error) {
	if s.index == nil {
		return 0, ErrIndexNotReady
	}
	return s.index.Count(ctx)
}
