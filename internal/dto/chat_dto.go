package dto

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Query string `json:"query" validate:"required,min=3"`
}

// ChatResponse carries the assistant's prose answer.
type ChatResponse struct {
	Response string `json:"response"`
}
