package httpapi

import (
	"net/http"
	"strconv"

	"github.com/CARE-UiT/Reflectometer/internal/server/models"
)

// pathID parses the {id} path segment of serial-keyed routes.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

type courseCreateRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCourseCreate(w http.ResponseWriter, r *http.Request) {
	var req courseCreateRequest
	if err := decodeJSON(r, &req); err != nil || req.Name == "" {
		writeBadRequest(w, "name is required")
		return
	}

	course, err := s.courses.Create(r.Context(), UserFromContext(r.Context()).ID, req.Name)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCourseView(course))
}

func (s *Server) handleCourseList(w http.ResponseWriter, r *http.Request) {
	courses, err := s.courses.ListOwn(r.Context(), UserFromContext(r.Context()).ID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	views := make([]courseView, 0, len(courses))
	for i := range courses {
		views = append(views, toCourseView(&courses[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCourseGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid course id")
		return
	}
	course, err := s.courses.Get(r.Context(), UserFromContext(r.Context()).ID, id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCourseView(course))
}

func (s *Server) handleCourseUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid course id")
		return
	}
	var upd models.CourseUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeBadRequest(w, "invalid json")
		return
	}
	course, err := s.courses.Update(r.Context(), UserFromContext(r.Context()).ID, id, upd)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCourseView(course))
}

func (s *Server) handleCourseDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid course id")
		return
	}
	if err := s.courses.Delete(r.Context(), UserFromContext(r.Context()).ID, id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
