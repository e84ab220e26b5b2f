package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jorge-barreto/risdocs/internal/navigator"
	"github.com/jorge-barreto/risdocs/internal/theme"
)

// session is one client's browsing state. The theme lives beside the
// navigator, never inside it.
type session struct {
	id      string
	created time.Time
	nav     *navigator.Session

	mu       sync.Mutex
	theme    *theme.Flag
	lastUsed time.Time
}

func (s *session) touch(now time.Time) {
	s.mu.Lock()
	s.lastUsed = now
	s.mu.Unlock()
}

func (s *session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastUsed)
}

func (s *session) toggleTheme() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme.Toggle() == theme.Dark
}

func (s *session) dark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme.Dark()
}

func (s *Server) createSession() (*session, error) {
	nav, err := navigator.NewSession(s.cat, s.cfg.DefaultSection)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	sess := &session{
		id:       uuid.NewString(),
		created:  now,
		nav:      nav,
		theme:    theme.NewFlag(s.cfg.DefaultTheme),
		lastUsed: now,
	}
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	s.log.Debug("session created", "id", sess.id)
	return sess, nil
}

func (s *Server) lookupSession(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if ok {
		sess.touch(time.Now())
	}
	return sess, ok
}

func (s *Server) deleteSession(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// evictIdle drops sessions unused for longer than the configured TTL and
// returns how many were removed. A zero TTL keeps sessions forever.
func (s *Server) evictIdle(now time.Time) int {
	if s.cfg.SessionTTL <= 0 {
		return 0
	}
	s.mu.Lock()
	var evicted int
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.cfg.SessionTTL {
			delete(s.sessions, id)
			evicted++
			s.log.Debug("session expired", "id", id, "age", now.Sub(sess.created).Round(time.Second))
		}
	}
	s.mu.Unlock()
	if evicted > 0 {
		s.log.Info("expired idle sessions", "count", evicted, "remaining", s.SessionCount())
	}
	return evicted
}

// sweepSessions runs evictIdle every half TTL, at most once a second, until
// stop is closed.
func (s *Server) sweepSessions(stop <-chan struct{}) {
	interval := s.cfg.SessionTTL / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			s.evictIdle(now)
		}
	}
}
