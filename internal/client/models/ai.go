package models

import "time"

// ChatMessage is one turn in an AI coaching conversation.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// ChatRequest sends a user message. ConversationID is opaque to the client:
// it is minted server-side on the first message and threaded through
// subsequent calls unchanged.
type ChatRequest struct {
	ConversationID string `json:"conversationId,omitempty"`
	Message        string `json:"message" validate:"required"`
}

// ChatResponse is the coach's reply.
type ChatResponse struct {
	ConversationID string `json:"conversationId"`
	Reply          string `json:"reply"`
}

// Conversation is a summary row in the conversation list.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ConversationDetail is a conversation with its full message history.
type ConversationDetail struct {
	ID       string        `json:"id"`
	Title    string        `json:"title,omitempty"`
	Messages []ChatMessage `json:"messages"`
}
