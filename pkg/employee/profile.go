package employee

import (
	"fmt"
	"strings"
)

// Availability statuses an employee can be in.
const (
	AvailabilityAvailable          = "Available"
	AvailabilityPartiallyAvailable = "Partially Available"
	AvailabilityFullyBooked        = "Fully Booked"
)

// Profile is a single employee record as produced by the generator.
// Skills and PastProjects are kept as sets here; they are flattened with
// JoinList when stored as vector index metadata.
type Profile struct {
	Name            string   `json:"name"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	PastProjects    []string `json:"past_projects"`
	Availability    string   `json:"availability"`
}

// JoinList flattens a token set into the metadata storage format.
// The same convention MUST be used on ingestion and on read, otherwise
// SplitList cannot reproduce the original set.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// SplitList reverses JoinList. Semicolons are accepted as an alternative
// separator for data ingested by older seed runs.
func SplitList(joined string) []string {
	fields := strings.FieldsFunc(joined, func(r rune) bool {
		return r == ',' || r == ';'
	})
	var items []string
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			items = append(items, t)
		}
	}
	return items
}

// Document renders the textual representation of a profile that gets
// embedded. All searchable attributes must appear here: the embedding is
// the only thing the retriever matches against.
func (p Profile) Document() string {
	return fmt.Sprintf(
		"Employee Name: %s. Skills: %s. Experience: %d years. Past Projects: %s. Availability: %s.",
		p.Name,
		JoinList(p.Skills),
		p.ExperienceYears,
		JoinList(p.PastProjects),
		p.Availability,
	)
}
