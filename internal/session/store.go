package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	cookieName = "mood_session"

	// DefaultTTL bounds how long an idle session survives.
	DefaultTTL = 24 * time.Hour
)

// Session couples a state record with its identity and age.
type Session struct {
	ID        string
	State     State
	CreatedAt time.Time
}

// Store manages sessions in memory. Sessions are never persisted; they
// expire after the TTL or when the process exits.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an in-memory session store with the default TTL.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      DefaultTTL,
		now:      time.Now,
	}
}

// Create starts a new session with default state.
func (s *Store) Create() *Session {
	session := &Session{
		ID:        uuid.NewString(),
		State:     NewState(),
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get retrieves a session by ID, or nil if missing or expired.
func (s *Store) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if s.now().Sub(session.CreatedAt) > s.ttl {
		return nil
	}
	return session
}

// Delete removes a session by ID.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// FromRequest extracts the session from the request cookie, or nil.
func (s *Store) FromRequest(r *http.Request) *Session {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}
	return s.Get(cookie.Value)
}

// Ensure returns the request's session, creating one and setting its
// cookie if the request carries none.
func (s *Store) Ensure(w http.ResponseWriter, r *http.Request) *Session {
	if session := s.FromRequest(r); session != nil {
		return session
	}
	session := s.Create()
	s.SetCookie(w, session)
	return session
}

// SetCookie sets the session cookie on the response.
func (s *Store) SetCookie(w http.ResponseWriter, session *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})
}

// ClearCookie removes the session cookie from the response.
func (s *Store) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
