// Package inmemory implements the repository interfaces over in-process maps.
// It backs scenario tests and local experimentation; the db handles passed to
// the manager methods are ignored and all repositories share one state.
package inmemory

import (
	"context"
	"database/sql"
	"sync"

	"github.com/CARE-UiT/Reflectometer/internal/dbx"
	"github.com/CARE-UiT/Reflectometer/internal/server/models"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/courses"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/curves"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/keymoments"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/participants"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/refreshtokens"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/sessions"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/users"
)

type state struct {
	mu sync.RWMutex

	nextID int64

	users         map[int64]models.User
	refreshTokens map[string]models.RefreshToken
	courses       map[int64]models.Course
	sessions      map[string]models.Session
	participants  map[int64]models.Participant
	curves        map[int64]models.Curve
	keyMoments    map[int64]models.KeyMoment
}

func (s *state) nextSerial() int64 {
	s.nextID++
	return s.nextID
}

type RepositoryManager struct {
	st *state
}

func NewRepositoryManager() *RepositoryManager {
	return &RepositoryManager{st: &state{
		users:         map[int64]models.User{},
		refreshTokens: map[string]models.RefreshToken{},
		courses:       map[int64]models.Course{},
		sessions:      map[string]models.Session{},
		participants:  map[int64]models.Participant{},
		curves:        map[int64]models.Curve{},
		keyMoments:    map[int64]models.KeyMoment{},
	}}
}

func (m *RepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *RepositoryManager) Users(db dbx.DBTX) users.Repository {
	return &userRepo{st: m.st}
}

func (m *RepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return &refreshTokenRepo{st: m.st}
}

func (m *RepositoryManager) Courses(db dbx.DBTX) courses.Repository {
	return &courseRepo{st: m.st}
}

func (m *RepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return &sessionRepo{st: m.st}
}

func (m *RepositoryManager) Participants(db dbx.DBTX) participants.Repository {
	return &participantRepo{st: m.st}
}

func (m *RepositoryManager) Curves(db dbx.DBTX) curves.Repository {
	return &curveRepo{st: m.st}
}

func (m *RepositoryManager) KeyMoments(db dbx.DBTX) keymoments.Repository {
	return &keyMomentRepo{st: m.st}
}
