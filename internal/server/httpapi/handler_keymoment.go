package httpapi

import (
	"net/http"

	"github.com/CARE-UiT/Reflectometer/internal/server/models"
)

type keyMomentSubmitRequest struct {
	Curve        int64   `json:"curve"`
	Session      string  `json:"session"`
	Participant  *int64  `json:"participant"`
	XValue       float64 `json:"xvalue"`
	YValue       float64 `json:"yvalue"`
	What         string  `json:"what"`
	When         string  `json:"when"`
	Thoughts     string  `json:"thoughts"`
	Feelings     string  `json:"feelings"`
	Actions      string  `json:"actions"`
	Consequences string  `json:"consequences"`
}

func (s *Server) handleKeyMomentSubmit(w http.ResponseWriter, r *http.Request) {
	var req keyMomentSubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid json")
		return
	}
	if req.Curve == 0 {
		writeBadRequest(w, "curve is required")
		return
	}

	km, err := s.keymoments.Submit(r.Context(), &models.KeyMoment{
		Curve:        req.Curve,
		Session:      req.Session,
		Participant:  req.Participant,
		XValue:       req.XValue,
		YValue:       req.YValue,
		What:         req.What,
		When:         req.When,
		Thoughts:     req.Thoughts,
		Feelings:     req.Feelings,
		Actions:      req.Actions,
		Consequences: req.Consequences,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toKeyMomentView(km))
}

func (s *Server) handleKeyMomentList(w http.ResponseWriter, r *http.Request) {
	curveID, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid curve id")
		return
	}
	moments, err := s.keymoments.ListByCurve(r.Context(), UserFromContext(r.Context()).ID, curveID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	views := make([]keyMomentView, 0, len(moments))
	for i := range moments {
		views = append(views, toKeyMomentView(&moments[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleKeyMomentGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid key moment id")
		return
	}
	km, err := s.keymoments.Get(r.Context(), UserFromContext(r.Context()).ID, id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toKeyMomentView(km))
}

func (s *Server) handleKeyMomentUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid key moment id")
		return
	}
	var upd models.KeyMomentUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeBadRequest(w, "invalid json")
		return
	}
	km, err := s.keymoments.Update(r.Context(), UserFromContext(r.Context()).ID, id, upd)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toKeyMomentView(km))
}

func (s *Server) handleKeyMomentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeBadRequest(w, "invalid key moment id")
		return
	}
	if err := s.keymoments.Delete(r.Context(), UserFromContext(r.Context()).ID, id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
