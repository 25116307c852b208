package services

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/CARE-UiT/Reflectometer/internal/server/authz"
	"github.com/CARE-UiT/Reflectometer/internal/server/models"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/repomanager"
)

// ParticipantService manages course participants. Participants are not
// identities; only the owning instructor manages the roster, so every
// operation is gated on the participant's course.
type ParticipantService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gate        *authz.Gate
}

func NewParticipantService(db *sql.DB, m repomanager.RepositoryManager, gate *authz.Gate) *ParticipantService {
	return &ParticipantService{db: db, repomanager: m, gate: gate}
}

func (s *ParticipantService) Create(ctx context.Context, userID, courseID int64, name string) (*models.Participant, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindCourse, strconv.FormatInt(courseID, 10)); err != nil {
		return nil, err
	}
	return s.repomanager.Participants(s.db).Create(ctx, &models.Participant{Name: name, Course: courseID})
}

func (s *ParticipantService) Get(ctx context.Context, userID, participantID int64) (*models.Participant, error) {
	p, err := s.repomanager.Participants(s.db).Get(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Authorize(ctx, userID, authz.KindCourse, strconv.FormatInt(p.Course, 10)); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ParticipantService) Delete(ctx context.Context, userID, participantID int64) error {
	if _, err := s.Get(ctx, userID, participantID); err != nil {
		return err
	}
	return s.repomanager.Participants(s.db).Delete(ctx, participantID)
}

func (s *ParticipantService) ListByCourse(ctx context.Context, userID, courseID int64) ([]models.Participant, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindCourse, strconv.FormatInt(courseID, 10)); err != nil {
		return nil, err
	}
	return s.repomanager.Participants(s.db).ListByCourse(ctx, courseID)
}
