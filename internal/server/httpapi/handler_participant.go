package httpapi

import "net/http"

type participantCreateRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleParticipantCreate(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid course id")
		return
	}
	var req participantCreateRequest
	if err := decodeJSON(r, &req); err != nil || req.Name == "" {
		writeBadRequest(w, "name is required")
		return
	}

	p, err := s.participants.Create(r.Context(), UserFromContext(r.Context()).ID, courseID, req.Name)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toParticipantView(p))
}

func (s *Server) handleParticipantList(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid course id")
		return
	}
	list, err := s.participants.ListByCourse(r.Context(), UserFromContext(r.Context()).ID, courseID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	views := make([]participantView, 0, len(list))
	for i := range list {
		views = append(views, toParticipantView(&list[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleParticipantGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid participant id")
		return
	}
	p, err := s.participants.Get(r.Context(), UserFromContext(r.Context()).ID, id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipantView(p))
}

func (s *Server) handleParticipantDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid participant id")
		return
	}
	if err := s.participants.Delete(r.Context(), UserFromContext(r.Context()).ID, id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
