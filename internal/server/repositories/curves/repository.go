package curves

import (
	"context"

	"github.com/CARE-UiT/Reflectometer/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, curve *models.Curve) (*models.Curve, error)
	Get(ctx context.Context, id int64) (*models.Curve, error)
	Update(ctx context.Context, id int64, upd models.CurveUpdate) (*models.Curve, error)
	Delete(ctx context.Context, id int64) error
	ListBySession(ctx context.Context, session string) ([]models.Curve, error)
}
