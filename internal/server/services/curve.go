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

// CurveService manages submitted curves. Submission is open to participants
// (no identity involved) but fails closed when the target session does not
// exist; reading and managing curves is reserved for the owning instructor.
type CurveService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	gate           *authz.Gate
	blobs          *BlobService
	maxInlineBytes int64
}

func NewCurveService(db *sql.DB, m repomanager.RepositoryManager, gate *authz.Gate, blobs *BlobService, maxInlineBytes int64) *CurveService {
	return &CurveService{db: db, repomanager: m, gate: gate, blobs: blobs, maxInlineBytes: maxInlineBytes}
}

// Submit stores a participant's curve under an existing session. Payloads
// over the inline limit are refused; participants upload those to blob
// storage via PresignUpload and submit the returned key instead.
func (s *CurveService) Submit(ctx context.Context, sessionID string, participant *int64, payload []byte, blobKey *string) (*models.Curve, error) {
	if int64(len(payload)) > s.maxInlineBytes {
		return nil, common.ErrPayloadTooLarge
	}
	if _, err := s.repomanager.Sessions(s.db).Get(ctx, sessionID); err != nil {
		return nil, err
	}

	curve := &models.Curve{
		Session:     sessionID,
		Participant: participant,
		Payload:     payload,
		BlobKey:     blobKey,
	}
	return s.repomanager.Curves(s.db).Create(ctx, curve)
}

// PresignUpload hands a participant a URL to upload a large payload blob
// directly; the returned key is submitted with the curve afterwards. The
// session must exist, matching the Submit path.
func (s *CurveService) PresignUpload(ctx context.Context, sessionID string) (key, url string, err error) {
	if _, err := s.repomanager.Sessions(s.db).Get(ctx, sessionID); err != nil {
		return "", "", err
	}

	key = StorageKey(sessionID)
	url, err = s.blobs.PresignPut(ctx, key)
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}

func (s *CurveService) Get(ctx context.Context, userID, curveID int64) (*models.Curve, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindCurve, strconv.FormatInt(curveID, 10)); err != nil {
		return nil, err
	}
	return s.repomanager.Curves(s.db).Get(ctx, curveID)
}

// PresignDownload returns a download URL for a curve's offloaded payload.
func (s *CurveService) PresignDownload(ctx context.Context, userID, curveID int64) (string, error) {
	curve, err := s.Get(ctx, userID, curveID)
	if err != nil {
		return "", err
	}
	if curve.BlobKey == nil {
		return "", common.ErrorNotFound
	}
	return s.blobs.PresignGet(ctx, *curve.BlobKey)
}

func (s *CurveService) Update(ctx context.Context, userID, curveID int64, upd models.CurveUpdate) (*models.Curve, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindCurve, strconv.FormatInt(curveID, 10)); err != nil {
		return nil, err
	}
	return s.repomanager.Curves(s.db).Update(ctx, curveID, upd)
}

func (s *CurveService) Delete(ctx context.Context, userID, curveID int64) error {
	if err := s.gate.Authorize(ctx, userID, authz.KindCurve, strconv.FormatInt(curveID, 10)); err != nil {
		return err
	}
	return s.repomanager.Curves(s.db).Delete(ctx, curveID)
}

func (s *CurveService) ListBySession(ctx context.Context, userID int64, sessionID string) ([]models.Curve, error) {
	if err := s.gate.Authorize(ctx, userID, authz.KindSession, sessionID); err != nil {
		return nil, err
	}
	return s.repomanager.Curves(s.db).ListBySession(ctx, sessionID)
}
