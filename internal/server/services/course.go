package services

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/CARE-UiT/Reflectometer/internal/server/authz"
	"github.com/CARE-UiT/Reflectometer/internal/server/models"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/repomanager"
)

// CourseService manages courses. Creating a course is the only operation
// authorized purely by "caller is an authenticated identity"; everything else
// passes through the gate.
type CourseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gate        *authz.Gate
}

func NewCourseService(db *sql.DB, m repomanager.RepositoryManager, gate *authz.Gate) *CourseService {
	return &CourseService{db: db, repomanager: m, gate: gate}
}

func (s *CourseService) Create(ctx context.Context, ownerID int64, name string) (*models.Course, error) {
	course := &models.Course{Name: name, Owner: ownerID}
	return s.repomanager.Courses(s.db).Create(ctx, course)
}

func (s *CourseService) Get(ctx context.Context, userID, courseID int64) (*models.Course, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindCourse, strconv.FormatInt(courseID, 10)); err != nil {
		return nil, err
	}
	return s.repomanager.Courses(s.db).Get(ctx, courseID)
}

func (s *CourseService) Update(ctx context.Context, userID, courseID int64, upd models.CourseUpdate) (*models.Course, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindCourse, strconv.FormatInt(courseID, 10)); err != nil {
		return nil, err
	}
	return s.repomanager.Courses(s.db).Update(ctx, courseID, upd)
}

func (s *CourseService) Delete(ctx context.Context, userID, courseID int64) error {
	if err := s.gate.Authorize(ctx, userID, authz.KindCourse, strconv.FormatInt(courseID, 10)); err != nil {
		return err
	}
	return s.repomanager.Courses(s.db).Delete(ctx, courseID)
}

// ListOwn returns the caller's own courses; there is nothing to gate since
// the owner filter is the caller.
func (s *CourseService) ListOwn(ctx context.Context, userID int64) ([]models.Course, error) {
	return s.repomanager.Courses(s.db).ListByOwner(ctx, userID)
}
