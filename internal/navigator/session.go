package navigator

import (
	"sync"

	"github.com/jorge-barreto/risdocs/internal/catalog"
)

// Session serializes access to an Engine shared between goroutines.
type Session struct {
	mu sync.Mutex
	e  *Engine
}

// NewSession creates a locked engine over cat with defaultID selected.
func NewSession(cat *catalog.Catalog, defaultID string) (*Session, error) {
	e, err := New(cat, defaultID)
	if err != nil {
		return nil, err
	}
	return &Session{e: e}, nil
}

func (s *Session) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.e.SetQuery(q)
}

func (s *Session) SetSelection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.SetSelection(id)
}

// Snapshot reads query, visibility and active section under one lock.
func (s *Session) Snapshot() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Snapshot()
}
