package dto

// SearchEmployeesRequest is the query-string contract of
// GET /employees/search.
type SearchEmployeesRequest struct {
	Query string `json:"query" validate:"required,min=3"`
	TopK  int    `json:"top_k" validate:"gte=1,lte=20"`
}

// EmployeeResponse mirrors the metadata stored in the vector index:
// skills and past_projects stay in their joined string form.
type EmployeeResponse struct {
	Name            string `json:"name"`
	Skills          string `json:"skills"`
	ExperienceYears int    `json:"experience_years"`
	PastProjects    string `json:"past_projects"`
	Availability    string `json:"availability"`
}

type EmployeeSearchResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Message   string             `json:"message"`
}
