package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vitalsync/fitclient/internal/client/api"
	"github.com/vitalsync/fitclient/internal/client/models"
)

// AIService covers the AI coaching backend. Every call is marked AIRouted so
// the request client applies the dual-origin fallback on gateway timeouts.
type AIService struct {
	api *api.Client
}

func NewAIService(c *api.Client) *AIService {
	return &AIService{api: c}
}

// SendMessage posts a chat turn. Leave ConversationID empty to start a new
// conversation; the server mints the ID and returns it in the response.
func (s *AIService) SendMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid chat request: %w", err)
	}
	d := api.Descriptor{
		Method:   http.MethodPost,
		Path:     "/api/ai/chat",
		Body:     req,
		AIRouted: true,
	}
	var resp models.ChatResponse
	if err := s.api.DoJSON(ctx, d, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Conversations lists the user's conversations. Cached.
func (s *AIService) Conversations(ctx context.Context) ([]models.Conversation, error) {
	d := api.Descriptor{
		Method:    http.MethodGet,
		Path:      "/api/ai/conversations",
		Cacheable: true,
		AIRouted:  true,
	}
	var conversations []models.Conversation
	if err := s.api.DoJSON(ctx, d, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// Conversation fetches one conversation with its message history.
func (s *AIService) Conversation(ctx context.Context, id string) (*models.ConversationDetail, error) {
	d := api.Descriptor{
		Method:   http.MethodGet,
		Path:     "/api/ai/conversations/" + id,
		AIRouted: true,
	}
	var detail models.ConversationDetail
	if err := s.api.DoJSON(ctx, d, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// DeleteConversation removes a conversation server-side.
func (s *AIService) DeleteConversation(ctx context.Context, id string) error {
	d := api.Descriptor{
		Method:   http.MethodDelete,
		Path:     "/api/ai/conversations/" + id,
		AIRouted: true,
	}
	return s.api.DoJSON(ctx, d, nil)
}
