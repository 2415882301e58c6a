package calendar

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"mandir_server/internal/catalog"
)

// Session wraps one Engine for HTTP use. Engine operations are synchronous
// state transitions; the mutex serializes the interaction events that gin
// may deliver concurrently.
type Session struct {
	ID        string
	VisitorID string

	mu  sync.Mutex
	eng *Engine
}

// Do runs fn with exclusive access to the session's engine.
func (s *Session) Do(fn func(*Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.eng)
}

// SessionStore owns all live calendar widget sessions. Sessions are
// discarded with the process; durable RSVP state, when enabled, lives in
// the rsvp store and is seeded at session creation.
type SessionStore struct {
	cat *catalog.Catalog
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionStore creates a session store over the given catalog. A nil
// nowFn uses time.Now.
func NewSessionStore(cat *catalog.Catalog, nowFn func() time.Time) *SessionStore {
	return &SessionStore{
		cat:      cat,
		now:      nowFn,
		sessions: make(map[string]*Session),
	}
}

// Create opens a fresh session. visitorID is optional and only used to key
// persisted RSVP flags.
func (st *SessionStore) Create(visitorID string) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		VisitorID: visitorID,
		eng:       New(st.cat, st.now),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks up a session by id.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	return s, ok
}
