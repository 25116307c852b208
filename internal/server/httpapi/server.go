// Package httpapi exposes the services over a JSON HTTP API. Instructor
// routes sit behind bearer-token authentication; the participant submission
// routes are open but fail closed on unknown sessions and curves.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/CARE-UiT/Reflectometer/internal/logging"
	"github.com/CARE-UiT/Reflectometer/internal/server/services"
)

type Server struct {
	address string
	logger  logging.Logger

	users        *services.UserService
	courses      *services.CourseService
	sessions     *services.SessionService
	participants *services.ParticipantService
	curves       *services.CurveService
	keymoments   *services.KeyMomentService
}

func NewServer(address string, l logging.Logger,
	us *services.UserService, cs *services.CourseService, ss *services.SessionService,
	ps *services.ParticipantService, cv *services.CurveService, km *services.KeyMomentService) *Server {
	return &Server{
		address:      address,
		logger:       l.With("module", "http_server"),
		users:        us,
		courses:      cs,
		sessions:     ss,
		participants: ps,
		curves:       cv,
		keymoments:   km,
	}
}

// Routes builds the request mux. Exported so tests can drive the mux
// directly through httptest without binding a socket.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/new", s.handleRegister)
	mux.HandleFunc("POST /token", s.handleToken)
	mux.HandleFunc("POST /auth/refresh", s.handleRefresh)
	mux.HandleFunc("GET /auth/current", s.withAuth(s.handleCurrent))

	mux.HandleFunc("POST /courses", s.withAuth(s.handleCourseCreate))
	mux.HandleFunc("GET /courses", s.withAuth(s.handleCourseList))
	mux.HandleFunc("GET /courses/{id}", s.withAuth(s.handleCourseGet))
	mux.HandleFunc("PATCH /courses/{id}", s.withAuth(s.handleCourseUpdate))
	mux.HandleFunc("DELETE /courses/{id}", s.withAuth(s.handleCourseDelete))

	mux.HandleFunc("POST /courses/{id}/sessions", s.withAuth(s.handleSessionCreate))
	mux.HandleFunc("GET /courses/{id}/sessions", s.withAuth(s.handleSessionList))
	mux.HandleFunc("GET /sessions/{id}", s.withAuth(s.handleSessionGet))
	mux.HandleFunc("PATCH /sessions/{id}", s.withAuth(s.handleSessionUpdate))
	mux.HandleFunc("DELETE /sessions/{id}", s.withAuth(s.handleSessionDelete))

	mux.HandleFunc("POST /courses/{id}/participants", s.withAuth(s.handleParticipantCreate))
	mux.HandleFunc("GET /courses/{id}/participants", s.withAuth(s.handleParticipantList))
	mux.HandleFunc("GET /participants/{id}", s.withAuth(s.handleParticipantGet))
	mux.HandleFunc("DELETE /participants/{id}", s.withAuth(s.handleParticipantDelete))

	// participant-facing: no identity, keyed by session id alone
	mux.HandleFunc("POST /curves", s.handleCurveSubmit)
	mux.HandleFunc("POST /sessions/{id}/upload-url", s.handleCurveUploadURL)
	mux.HandleFunc("POST /keymoments", s.handleKeyMomentSubmit)

	mux.HandleFunc("GET /sessions/{id}/curves", s.withAuth(s.handleCurveList))
	mux.HandleFunc("GET /curves/{id}", s.withAuth(s.handleCurveGet))
	mux.HandleFunc("PATCH /curves/{id}", s.withAuth(s.handleCurveUpdate))
	mux.HandleFunc("DELETE /curves/{id}", s.withAuth(s.handleCurveDelete))
	mux.HandleFunc("GET /curves/{id}/blob-url", s.withAuth(s.handleCurveBlobURL))

	mux.HandleFunc("GET /curves/{id}/keymoments", s.withAuth(s.handleKeyMomentList))
	mux.HandleFunc("GET /keymoments/{id}", s.withAuth(s.handleKeyMomentGet))
	mux.HandleFunc("PATCH /keymoments/{id}", s.withAuth(s.handleKeyMomentUpdate))
	mux.HandleFunc("DELETE /keymoments/{id}", s.withAuth(s.handleKeyMomentDelete))

	return mux
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
