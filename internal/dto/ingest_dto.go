package dto

import "github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/employee"

// PublishEmployeeProfileMessage is the payload of an ingestion event:
// one generated profile to embed and store.
type PublishEmployeeProfileMessage struct {
	Profile employee.Profile `json:"profile"`
}
