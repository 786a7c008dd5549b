package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// webSessions gates browser access to the workspace. The bearer token
// itself lives in the session store; these cookie sessions only mark a
// browser as allowed in after a successful login.
type webSessions struct {
	ttl time.Duration

	lock     sync.Mutex
	sessions map[string]time.Time
}

func newWebSessions(ttl time.Duration) *webSessions {
	return &webSessions{
		ttl:      ttl,
		sessions: make(map[string]time.Time),
	}
}

func (w *webSessions) Create() string {
	id := uuid.New().String()
	w.lock.Lock()
	defer w.lock.Unlock()
	w.sessions[id] = time.Now().Add(w.ttl)
	return id
}

func (w *webSessions) Valid(id string) bool {
	w.lock.Lock()
	defer w.lock.Unlock()
	expiry, ok := w.sessions[id]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(w.sessions, id)
		return false
	}
	return true
}

func (w *webSessions) Delete(id string) {
	w.lock.Lock()
	defer w.lock.Unlock()
	delete(w.sessions, id)
}

func (w *webSessions) DeleteAll() {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.sessions = make(map[string]time.Time)
}
