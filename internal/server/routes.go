package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jorge-barreto/risdocs/internal/catalog"
	"github.com/jorge-barreto/risdocs/internal/navigator"
)

type sectionSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type sessionView struct {
	ID      string          `json:"id"`
	Query   string          `json:"query"`
	Visible []string        `json:"visible"`
	Active  catalog.Section `json:"active"`
	Dark    bool            `json:"dark"`
}

type errorBody struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

type queryRequest struct {
	Query *string `json:"query"`
}

type selectionRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	ids := navigator.Match(s.cat, r.URL.Query().Get("q"))
	out := make([]sectionSummary, 0, len(ids))
	for _, id := range ids {
		sec, _ := s.cat.Get(id)
		out = append(out, sectionSummary{ID: sec.ID, Title: sec.Title, Icon: sec.Icon})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sec, ok := s.cat.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "section not found", Suggestion: s.cat.Suggest(id)})
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.createSession()
	if err != nil {
		s.log.Error("creating session", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	s.writeSession(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}
	s.writeSession(w, http.StatusOK, sess)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.deleteSession(chi.URLParam(r, "sid")) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "session not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetQuery(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "body must be {\"query\": string}"})
		return
	}
	sess.nav.SetQuery(*req.Query)
	s.writeSession(w, http.StatusOK, sess)
}

func (s *Server) handleSetSelection(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "body must be {\"id\": string}"})
		return
	}
	if err := sess.nav.SetSelection(req.ID); err != nil {
		var selErr *navigator.SelectionError
		if errors.As(err, &selErr) && errors.Is(err, navigator.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error(), Suggestion: selErr.Suggestion})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	s.writeSession(w, http.StatusOK, sess)
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}
	sess.toggleTheme()
	s.writeSession(w, http.StatusOK, sess)
}

func (s *Server) sessionFromRequest(w http.ResponseWriter, r *http.Request) (*session, bool) {
	sess, ok := s.lookupSession(chi.URLParam(r, "sid"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "session not found"})
	}
	return sess, ok
}

func (s *Server) writeSession(w http.ResponseWriter, status int, sess *session) {
	v, err := sess.nav.Snapshot()
	if err != nil {
		s.log.Error("session snapshot", "id", sess.id, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, status, sessionView{
		ID:      sess.id,
		Query:   v.Query,
		Visible: v.Visible,
		Active:  v.Active,
		Dark:    sess.dark(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
