package httpapi

import (
	"net/http"

	"github.com/CARE-UiT/Reflectometer/internal/server/models"
)

type curveSubmitRequest struct {
	Session     string  `json:"session"`
	Participant *int64  `json:"participant"`
	Payload     []byte  `json:"payload"`
	BlobKey     *string `json:"blob_key"`
}

// handleCurveSubmit accepts anonymous participant submissions. The session id
// acts as the capability: an unknown session yields 404 and nothing else.
func (s *Server) handleCurveSubmit(w http.ResponseWriter, r *http.Request) {
	var req curveSubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid json")
		return
	}
	if req.Session == "" {
		writeBadRequest(w, "session is required")
		return
	}

	curve, err := s.curves.Submit(r.Context(), req.Session, req.Participant, req.Payload, req.BlobKey)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCurveView(curve))
}

type uploadURLResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (s *Server) handleCurveUploadURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.curves.PresignUpload(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, uploadURLResponse{Key: key, URL: url})
}

func (s *Server) handleCurveList(w http.ResponseWriter, r *http.Request) {
	curves, err := s.curves.ListBySession(r.Context(), UserFromContext(r.Context()).ID, r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	views := make([]curveView, 0, len(curves))
	for i := range curves {
		views = append(views, toCurveView(&curves[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCurveGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid curve id")
		return
	}
	curve, err := s.curves.Get(r.Context(), UserFromContext(r.Context()).ID, id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCurveView(curve))
}

func (s *Server) handleCurveUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid curve id")
		return
	}
	var upd models.CurveUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeBadRequest(w, "invalid json")
		return
	}
	curve, err := s.curves.Update(r.Context(), UserFromContext(r.Context()).ID, id, upd)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCurveView(curve))
}

func (s *Server) handleCurveDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid curve id")
		return
	}
	if err := s.curves.Delete(r.Context(), UserFromContext(r.Context()).ID, id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type blobURLResponse struct {
	URL string `json:"url"`
}

func (s *Server) handleCurveBlobURL(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid curve id")
		return
	}
	url, err := s.curves.PresignDownload(r.Context(), UserFromContext(r.Context()).ID, id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, blobURLResponse{URL: url})
}
