// Package assistant wraps the hosted text-generation service behind the
// fixed "Pandit Ji" persona. Failures never escape this package: every call
// resolves to some user-presentable reply string.
package assistant

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Role tags for transcript turns.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one turn of the chat transcript.
type Message struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

const systemInstruction = `You are a wise, calm, and compassionate Hindu Priest (Pandit Ji).
Your role is to guide devotees with spiritual knowledge, explain rituals (pooja),
interpret mythology, and offer comforting advice based on Dharma and ancient scriptures (Vedas, Upanishads, Gita).
Keep your answers concise (under 100 words), respectful, and culturally accurate.
Use a gentle, blessing-filled tone.
If asked about medical or legal advice, politely decline and refer them to professionals.
Always end with a short blessing like "Om Shanti" or "Hari Om".`

// Fallback replies. Both are fixed and non-empty so the interaction layer
// always has something to render.
const (
	fallbackEmptyReply = "I apologize, I am in deep meditation. Please ask again later. Om Shanti."
	fallbackError      = "The connection to the spiritual realm is currently faint. Please try again in a moment."
)

// completionClient is the slice of the OpenAI-compatible client the proxy
// needs. *openai.Client satisfies it; tests substitute a stub.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Proxy issues one outbound completion call per user message. It owns no
// conversation state; the caller supplies the full transcript per call.
type Proxy struct {
	client  completionClient
	modelID string
}

// New constructs a Proxy against the configured endpoint. baseURL is
// optional and points the client at an OpenAI-compatible gateway; modelID
// falls back to gpt-4o-mini when unset.
func New(apiKey, baseURL, modelID string) *Proxy {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if modelID == "" {
		modelID = openai.GPT4oMini
	}
	return &Proxy{
		client:  openai.NewClientWithConfig(cfg),
		modelID: modelID,
	}
}

// SendMessage forwards the transcript plus the new user turn and returns the
// reply text. Transport or service errors are converted to the fixed
// fallback string, never propagated.
func (p *Proxy) SendMessage(ctx context.Context, history []Message, newMessage string) string {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemInstruction,
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleModel {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Text})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: newMessage,
	})

	req := openai.ChatCompletionRequest{
		Model:       p.modelID,
		Messages:    messages,
		MaxTokens:   300,
		Temperature: 0.7,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil && shouldRetry(err) {
		log.Printf("assistant: completion failed, retrying once: %v", err)
		time.Sleep(time.Second)
		resp, err = p.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		log.Printf("assistant: completion failed: %v", err)
		return fallbackError
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		log.Printf("assistant: empty completion, usage: %+v", resp.Usage)
		return fallbackEmptyReply
	}
	return resp.Choices[0].Message.Content
}

// shouldRetry reports whether an error looks transient enough for one retry.
func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "connection reset by peer") ||
		strings.Contains(errMsg, "context deadline exceeded")
}
