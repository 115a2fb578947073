package rag

import "math"

// mmrSelect picks up to k candidates maximizing
//
//	lambda*sim(query, d) - (1-lambda)*max sim(d, already selected)
//
// Candidates arrive ordered by similarity, so the first pick is always
// the single most relevant document.
func mmrSelect(queryVec []float32, candidates []*ScoredDocument, k int, lambda float64) []*ScoredDocument {
	if len(candidates) == 0 || k <= 0 {
		return nil
	}
	if k > len(candidates) {
		k = len(candidates)
	}

	selected := make([]*ScoredDocument, 0, k)
	remaining := make([]*ScoredDocument, len(candidates))
	copy(remaining, candidates)

	for len(selected) < k && len(remaining) > 0 {
		bestIdx := 0
		bestScore := math.Inf(-1)

		for i, cand := range remaining {
			relevance := cand.Similarity
			if relevance == 0 && len(cand.Embedding) > 0 {
				relevance = cosineSimilarity(queryVec, cand.Embedding)
			}

			redundancy := 0.0
			for _, sel := range selected {
				if sim := cosineSimilarity(cand.Embedding, sel.Embedding); sim > redundancy {
					redundancy = sim
				}
			}

			score := lambda*relevance - (1-lambda)*redundancy
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}

// cosineSimilarity between two vectors. Stored vectors are normalized at
// embedding time, but the explicit denominator keeps this correct for
// arbitrary inputs (tests use unnormalized vectors).
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
