package rag

import (
	"fmt"
	"strings"
)

// NoResultsContext is what the generation step receives instead of an
// empty context block. The LLM must never be prompted with nothing.
const NoResultsContext = "No relevant employee information found."

// FormatDocuments renders retrieved profiles into the context block of
// the prompt. Output is deterministic and order-preserving: one numbered
// block per profile, blocks separated by a blank line.
func FormatDocuments(docs []Document) string {
	if len(docs) == 0 {
		return NoResultsContext
	}

	var b strings.Builder
	for i, doc := range docs {
		fmt.Fprintf(&b, "--- Employee %d ---\n", i+1)
		fmt.Fprintf(&b, "Name: %s\n", doc.Name)
		fmt.Fprintf(&b, "Skills: %s\n", doc.Skills)
		fmt.Fprintf(&b, "Experience: %d years\n", doc.ExperienceYears)
		fmt.Fprintf(&b, "Past Projects: %s\n", doc.PastProjects)
		fmt.Fprintf(&b, "Availability: %s\n", doc.Availability)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
