package services

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/CARE-UiT/Reflectometer/internal/server/authz"
	"github.com/CARE-UiT/Reflectometer/internal/server/models"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// SessionService manages reflectometer sessions under a course.
type SessionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gate        *authz.Gate
}

func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, gate *authz.Gate) *SessionService {
	return &SessionService{db: db, repomanager: m, gate: gate}
}

// Create starts a session under a course the caller owns. The id is a fresh
// random UUID, so identifiers never collide with or resurrect a deleted
// session.
func (s *SessionService) Create(ctx context.Context, userID, courseID int64, name string) (*models.Session, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindCourse, strconv.FormatInt(courseID, 10)); err != nil {
		return nil, err
	}

	session := &models.Session{ID: uuid.NewString(), Name: name, Course: courseID}
	return s.repomanager.Sessions(s.db).Create(ctx, session)
}

func (s *SessionService) Get(ctx context.Context, userID int64, sessionID string) (*models.Session, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindSession, sessionID); err != nil {
		return nil, err
	}
	return s.repomanager.Sessions(s.db).Get(ctx, sessionID)
}

func (s *SessionService) Update(ctx context.Context, userID int64, sessionID string, upd models.SessionUpdate) (*models.Session, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindSession, sessionID); err != nil {
		return nil, err
	}
	return s.repomanager.Sessions(s.db).Update(ctx, sessionID, upd)
}

func (s *SessionService) Delete(ctx context.Context, userID int64, sessionID string) error {
	if err := s.gate.Authorize(ctx, userID, authz.KindSession, sessionID); err != nil {
		return err
	}
	return s.repomanager.Sessions(s.db).Delete(ctx, sessionID)
}

func (s *SessionService) ListByCourse(ctx context.Context, userID, courseID int64) ([]models.Session, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindCourse, strconv.FormatInt(courseID, 10)); err != nil {
		return nil, err
	}
	return s.repomanager.Sessions(s.db).ListByCourse(ctx, courseID)
}
