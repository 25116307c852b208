package services

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/CARE-UiT/Reflectometer/internal/common"
	"github.com/CARE-UiT/Reflectometer/internal/server/authz"
	"github.com/CARE-UiT/Reflectometer/internal/server/models"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/repomanager"
)

// KeyMomentService manages annotated key moments on curves. Like curves,
// creation is a participant submission; reads and management go to the
// owning instructor only.
type KeyMomentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gate        *authz.Gate
}

func NewKeyMomentService(db *sql.DB, m repomanager.RepositoryManager, gate *authz.Gate) *KeyMomentService {
	return &KeyMomentService{db: db, repomanager: m, gate: gate}
}

// Submit stores a key moment against an existing curve. The curve's session
// is authoritative: the denormalized session field is always taken from the
// curve, and a caller-supplied session that disagrees is rejected rather
// than stored.
func (s *KeyMomentService) Submit(ctx context.Context, km *models.KeyMoment) (*models.KeyMoment, error) {
	curve, err := s.repomanager.Curves(s.db).Get(ctx, km.Curve)
	if err != nil {
		return nil, err
	}
	if km.Session != "" && km.Session != curve.Session {
		return nil, common.ErrorNotFound
	}
	km.Session = curve.Session

	return s.repomanager.KeyMoments(s.db).Create(ctx, km)
}

func (s *KeyMomentService) Get(ctx context.Context, userID, keyMomentID int64) (*models.KeyMoment, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindKeyMoment, strconv.FormatInt(keyMomentID, 10)); err != nil {
		return nil, err
	}
	return s.repomanager.KeyMoments(s.db).Get(ctx, keyMomentID)
}

func (s *KeyMomentService) Update(ctx context.Context, userID, keyMomentID int64, upd models.KeyMomentUpdate) (*models.KeyMoment, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindKeyMoment, strconv.FormatInt(keyMomentID, 10)); err != nil {
		return nil, err
	}
	return s.repomanager.KeyMoments(s.db).Update(ctx, keyMomentID, upd)
}

func (s *KeyMomentService) Delete(ctx context.Context, userID, keyMomentID int64) error {
	if err := s.gate.Authorize(ctx, userID, authz.KindKeyMoment, strconv.FormatInt(keyMomentID, 10)); err != nil {
		return err
	}
	return s.repomanager.KeyMoments(s.db).Delete(ctx, keyMomentID)
}

func (s *KeyMomentService) ListByCurve(ctx context.Context, userID, curveID int64) ([]models.KeyMoment, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindCurve, strconv.FormatInt(curveID, 10)); err != nil {
		return nil, err
	}
	return s.repomanager.KeyMoments(s.db).ListByCurve(ctx, curveID)
}
