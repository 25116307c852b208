package httpapi

import (
	"net/http"

	"github.com/CARE-UiT/Reflectometer/internal/server/models"
)

type sessionCreateRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid course id")
		return
	}
	var req sessionCreateRequest
	if err := decodeJSON(r, &req); err != nil || req.Name == "" {
		writeBadRequest(w, "name is required")
		return
	}

	session, err := s.sessions.Create(r.Context(), UserFromContext(r.Context()).ID, courseID, req.Name)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionView(session))
}

func (s *Server) handleSessionList(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid course id")
		return
	}
	sessions, err := s.sessions.ListByCourse(r.Context(), UserFromContext(r.Context()).ID, courseID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	views := make([]sessionView, 0, len(sessions))
	for i := range sessions {
		views = append(views, toSessionView(&sessions[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleSessionGet(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessions.Get(r.Context(), UserFromContext(r.Context()).ID, r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionView(session))
}

func (s *Server) handleSessionUpdate(w http.ResponseWriter, r *http.Request) {
	var upd models.SessionUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeBadRequest(w, "invalid json")
		return
	}
	session, err := s.sessions.Update(r.Context(), UserFromContext(r.Context()).ID, r.PathValue("id"), upd)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionView(session))
}

func (s *Server) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), UserFromContext(r.Context()).ID, r.PathValue("id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
