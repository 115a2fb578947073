package rag

import (
	"context"
	"fmt"
	"testing"
)

// Three candidates against query [1,0,0]: anchor (most relevant),
// nearDup (almost identical to anchor), diverse (less relevant but
// pointing elsewhere). MMR must prefer diverse over nearDup.
func mmrFixture() *fakeIndex {
	return &fakeIndex{docs: []*ScoredDocument{
		{
			Document:  Document{Name: "Anchor"},
			Embedding: []float32{0.9, 0.44, 0},
		},
		{
			Document:  Document{Name: "NearDup"},
			Embedding: []float32{0.88, 0.45, 0.12},
		},
		{
			Document:  Document{Name: "Diverse"},
			Embedding: []float32{0.85, -0.52, 0},
		},
	}}
}

func TestRetrieveMostRelevantFirst(t *testing.T) {
	index := mmrFixture()
	r := NewRetriever(&fakeEmbedder{}, index)

	docs, err := r.Retrieve(context.Background(), "query", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d docs, want 1", len(docs))
	}
	if docs[0].Name != "Anchor" {
		t.Errorf("first result = %q, want Anchor", docs[0].Name)
	}
}

func TestRetrieveDiversity(t *testing.T) {
	index := mmrFixture()
	r := NewRetriever(&fakeEmbedder{}, index)

	docs, err := r.Retrieve(context.Background(), "query", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	// Pure nearest-neighbor would return NearDup second; MMR picks the
	// diverse candidate instead.
	if docs[0].Name != "Anchor" || docs[1].Name != "Diverse" {
		t.Errorf("got [%s, %s], want [Anchor, Diverse]", docs[0].Name, docs[1].Name)
	}
}

func TestRetrieveNoDuplicates(t *testing.T) {
	index := mmrFixture()
	r := NewRetriever(&fakeEmbedder{}, index)

	docs, err := r.Retrieve(context.Background(), "query", 3)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for _, d := range docs {
		if seen[d.Name] {
			t.Errorf("document %q returned twice", d.Name)
		}
		seen[d.Name] = true
	}
}

func TestRetrieveAtMostK(t *testing.T) {
	index := &fakeIndex{}
	for i := 0; i < 30; i++ {
		index.docs = append(index.docs, &ScoredDocument{
			Document:  Document{Name: fmt.Sprintf("Employee %d", i)},
			Embedding: []float32{1, float32(i) * 0.01, 0},
		})
	}
	r := NewRetriever(&fakeEmbedder{}, index)

	for _, k := range []int{1, 5, 20} {
		docs, err := r.Retrieve(context.Background(), "query", k)
		if err != nil {
			t.Fatal(err)
		}
		if len(docs) > k {
			t.Errorf("k=%d returned %d docs", k, len(docs))
		}
	}
}

func TestRetrieveClampsK(t *testing.T) {
	index := mmrFixture()
	r := NewRetriever(&fakeEmbedder{}, index)

	// k above the cap is clamped, not rejected
	docs, err := r.Retrieve(context.Background(), "query", 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Errorf("got %d docs, want all 3", len(docs))
	}

	// k below 1 is raised to 1
	docs, err = r.Retrieve(context.Background(), "query", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Errorf("k=0 returned %d docs, want 1", len(docs))
	}
}

func TestRetrieveShorterThanK(t *testing.T) {
	index := mmrFixture()
	r := NewRetriever(&fakeEmbedder{}, index)

	docs, err := r.Retrieve(context.Background(), "query", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Errorf("got %d docs, want the 3 the index holds", len(docs))
	}
}

func TestRetrieveEmptyIndex(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{}, &fakeIndex{})

	docs, err := r.Retrieve(context.Background(), "query", 5)
	if err != nil {
		t.Fatalf("empty index must not error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("got %d docs from an empty index", len(docs))
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"length mismatch", []float32{1}, []float32{1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("cosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}
