package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type stubClient struct {
	calls int
	fn    func(call int, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

func (s *stubClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.calls++
	return s.fn(s.calls, req)
}

func replyWith(text string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: text}},
		},
	}
}

func TestSendMessageSuccess(t *testing.T) {
	stub := &stubClient{fn: func(_ int, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		// System instruction first, then the lone user turn.
		if len(req.Messages) != 2 {
			t.Errorf("messages = %d, want 2", len(req.Messages))
		}
		if req.Messages[0].Role != openai.ChatMessageRoleSystem {
			t.Errorf("first message role = %q", req.Messages[0].Role)
		}
		if req.Messages[1].Content != "What is Navaratri?" {
			t.Errorf("user content = %q", req.Messages[1].Content)
		}
		return replyWith("Navaratri is nine nights of devotion. Om Shanti."), nil
	}}
	p := &Proxy{client: stub, modelID: "test-model"}

	got := p.SendMessage(context.Background(), nil, "What is Navaratri?")
	if got != "Navaratri is nine nights of devotion. Om Shanti." {
		t.Errorf("reply = %q", got)
	}
}

func TestSendMessageMapsHistoryRoles(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Text: "Namaste", Timestamp: time.Now()},
		{Role: RoleModel, Text: "Namaste, child. Hari Om.", Timestamp: time.Now()},
	}
	stub := &stubClient{fn: func(_ int, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		if len(req.Messages) != 4 {
			t.Fatalf("messages = %d, want 4", len(req.Messages))
		}
		if req.Messages[1].Role != openai.ChatMessageRoleUser {
			t.Errorf("history user role = %q", req.Messages[1].Role)
		}
		if req.Messages[2].Role != openai.ChatMessageRoleAssistant {
			t.Errorf("history model role = %q, want assistant", req.Messages[2].Role)
		}
		return replyWith("ok"), nil
	}}
	p := &Proxy{client: stub, modelID: "test-model"}
	p.SendMessage(context.Background(), history, "Tell me about aarti")
}

func TestSendMessageFailureReturnsFallback(t *testing.T) {
	stub := &stubClient{fn: func(_ int, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		return openai.ChatCompletionResponse{}, errors.New("boom")
	}}
	p := &Proxy{client: stub, modelID: "test-model"}

	got := p.SendMessage(context.Background(), nil, "What is Navaratri?")
	if got == "" {
		t.Fatal("fallback reply must be non-empty")
	}
	if got != fallbackError {
		t.Errorf("reply = %q, want error fallback", got)
	}
	if stub.calls != 1 {
		t.Errorf("calls = %d, want 1 (non-transient error must not retry)", stub.calls)
	}
}

func TestSendMessageEmptyCompletionReturnsFallback(t *testing.T) {
	stub := &stubClient{fn: func(_ int, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		return openai.ChatCompletionResponse{}, nil
	}}
	p := &Proxy{client: stub, modelID: "test-model"}

	got := p.SendMessage(context.Background(), nil, "What is Navaratri?")
	if got != fallbackEmptyReply {
		t.Errorf("reply = %q, want empty-reply fallback", got)
	}
}

func TestSendMessageRetriesTransientError(t *testing.T) {
	stub := &stubClient{fn: func(call int, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		if call == 1 {
			return openai.ChatCompletionResponse{}, errors.New("request timeout")
		}
		return replyWith("Hari Om."), nil
	}}
	p := &Proxy{client: stub, modelID: "test-model"}

	got := p.SendMessage(context.Background(), nil, "hello")
	if got != "Hari Om." {
		t.Errorf("reply = %q, want retried success", got)
	}
	if stub.calls != 2 {
		t.Errorf("calls = %d, want 2", stub.calls)
	}
}

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("boom"), false},
		{errors.New("rate limit exceeded"), true},
		{errors.New("context deadline exceeded"), true},
		{&openai.APIError{HTTPStatusCode: 503}, true},
		{&openai.APIError{HTTPStatusCode: 429}, true},
		{&openai.APIError{HTTPStatusCode: 400}, false},
	}
	for _, tt := range tests {
		if got := shouldRetry(tt.err); got != tt.want {
			t.Errorf("shouldRetry(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
