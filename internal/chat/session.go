// Package chat holds per-session conversation transcripts and enforces the
// single-outstanding-request rule: while a reply is pending the session
// rejects further sends instead of queueing them.
package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"mandir_server/internal/assistant"
)

var (
	// ErrNotFound is returned for an unknown session id.
	ErrNotFound = errors.New("chat session not found")
	// ErrBusy is returned when a session already has a request in flight.
	ErrBusy = errors.New("chat session has a request in flight")
)

// Replier produces a reply for a transcript plus a new message. It always
// resolves; the assistant proxy converts failures to a fallback string.
type Replier interface {
	SendMessage(ctx context.Context, history []assistant.Message, newMessage string) string
}

// Session is one visitor's conversation with the Pandit.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	busy     bool
	messages []assistant.Message
}

// Transcript returns a copy of the session's messages.
func (s *Session) Transcript() []assistant.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]assistant.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Store owns all chat sessions. In-memory only; sessions live for the
// process lifetime.
type Store struct {
	replier Replier
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates a session store backed by the given replier. A nil nowFn
// uses time.Now.
func NewStore(replier Replier, nowFn func() time.Time) *Store {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Store{
		replier:  replier,
		now:      nowFn,
		sessions: make(map[string]*Session),
	}
}

// Create opens a new empty session and returns it.
func (st *Store) Create() *Session {
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: st.now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks up a session by id.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Send appends the user turn, obtains a reply, appends it, and returns the
// reply text. Returns ErrBusy if the session already has a request in
// flight and ErrNotFound for unknown ids. There is no cancellation; once
// issued the call is awaited to resolution.
func (st *Store) Send(ctx context.Context, sessionID, text string) (string, error) {
	s, ok := st.Get(sessionID)
	if !ok {
		return "", ErrNotFound
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return "", ErrBusy
	}
	s.busy = true
	userTurn := assistant.Message{Role: assistant.RoleUser, Text: text, Timestamp: st.now()}
	s.messages = append(s.messages, userTurn)
	// Snapshot includes the new user turn, matching what the proxy expects
	// as "full prior transcript plus the new turn".
	history := make([]assistant.Message, len(s.messages))
	copy(history, s.messages)
	s.mu.Unlock()

	reply := st.replier.SendMessage(ctx, history, text)

	s.mu.Lock()
	s.messages = append(s.messages, assistant.Message{
		Role:      assistant.RoleModel,
		Text:      reply,
		Timestamp: st.now(),
	})
	s.busy = false
	s.mu.Unlock()

	return reply, nil
}
