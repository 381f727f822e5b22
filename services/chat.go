package services

import (
	"context"
	"net/http"

	"github.com/stockai/stockai-go/models"
)

// SendMessage sends one message to the AI assistant and returns its reply.
// Both sides of the exchange are appended to the server-side history.
// Requires a valid session.
func (c *Client) SendMessage(ctx context.Context, message string) (string, error) {
	payload := map[string]string{"message": message}

	var resp models.ChatResponse
	if err := c.do(ctx, "chat_send", http.MethodPost, "/api/chat", payload, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// GetChatHistory returns the caller's conversation ordered by creation time.
// Requires a valid session.
func (c *Client) GetChatHistory(ctx context.Context) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := c.do(ctx, "chat_history", http.MethodGet, "/api/chat/history", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
