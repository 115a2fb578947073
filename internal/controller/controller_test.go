package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/dto"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/internal/pkg/serverutils"
	"github.com/vidishsirdesai/hr-resource-query-chatbot/pkg/rag"
)

type stubAssistant struct {
	chatResp   *dto.ChatResponse
	chatErr    error
	searchResp *dto.EmployeeSearchResponse
	searchErr  error

	gotQuery string
	gotTopK  int
}

func (s *stubAssistant) Chat(ctx context.Context, query string) (*dto.ChatResponse, error) {
	s.gotQuery = query
	return s.chatResp, s.chatErr
}

func (s *stubAssistant) SearchEmployees(ctx context.Context, query string, topK int) (*dto.EmployeeSearchResponse, error) {
	s.gotQuery = query
	s.gotTopK = topK
	return s.searchResp, s.searchErr
}

func newTestApp(svc *stubAssistant) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewChatController(svc).RegisterRoutes(app)
	NewEmployeeController(svc).RegisterRoutes(app)
	return app
}

func TestChatSuccess(t *testing.T) {
	svc := &stubAssistant{chatResp: &dto.ChatResponse{Response: "Ana Lee knows AWS."}}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"query":"who knows AWS"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var body dto.ChatResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "Ana Lee knows AWS.", body.Response)
	assert.Equal(t, "who knows AWS", svc.gotQuery)
}

func TestChatQueryTooShort(t *testing.T) {
	app := newTestApp(&stubAssistant{})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"query":"ab"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestChatPipelineNotReady(t *testing.T) {
	app := newTestApp(&stubAssistant{chatErr: rag.ErrPipelineNotReady})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"query":"who knows AWS"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var body serverutils.ErrorDetail
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Contains(t, body.Detail, "not initialized")
}

func TestSearchDefaults(t *testing.T) {
	svc := &stubAssistant{searchResp: &dto.EmployeeSearchResponse{
		Employees: []dto.EmployeeResponse{{Name: "Ana Lee", Skills: "Python, AWS"}},
		Message:   "Search completed.",
	}}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/employees/search?query=python+developer", nil)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 5, svc.gotTopK, "top_k should default to 5")
	assert.Equal(t, "python developer", svc.gotQuery)

	var body dto.EmployeeSearchResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Len(t, body.Employees, 1)
	assert.Equal(t, "Search completed.", body.Message)
}

func TestSearchExplicitTopK(t *testing.T) {
	svc := &stubAssistant{searchResp: &dto.EmployeeSearchResponse{Message: "Search completed."}}
	app := newTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/employees/search?query=golang&top_k=12", nil)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 12, svc.gotTopK)
}

func TestSearchValidation(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"query too short", "/employees/search?query=ab"},
		{"missing query", "/employees/search"},
		{"top_k too large", "/employees/search?query=golang&top_k=50"},
		{"top_k zero", "/employees/search?query=golang&top_k=0"},
		{"top_k not a number", "/employees/search?query=golang&top_k=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&stubAssistant{})
			res, err := app.Test(httptest.NewRequest(http.MethodGet, tt.url, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		})
	}
}

func TestSearchIndexNotReady(t *testing.T) {
	app := newTestApp(&stubAssistant{searchErr: rag.ErrIndexNotReady})

	req := httptest.NewRequest(http.MethodGet, "/employees/search?query=python", nil)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var body serverutils.ErrorDetail
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Contains(t, body.Detail, "Employee search system error")
}

func TestSearchUnexpectedError(t *testing.T) {
	app := newTestApp(&stubAssistant{searchErr: assert.AnError})

	req := httptest.NewRequest(http.MethodGet, "/employees/search?query=python", nil)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var body serverutils.ErrorDetail
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Contains(t, body.Detail, "An unexpected error occurred")
}
