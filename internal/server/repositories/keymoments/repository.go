package keymoments

import (
	"context"

	"github.com/CARE-UiT/Reflectometer/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, keyMoment *models.KeyMoment) (*models.KeyMoment, error)
	Get(ctx context.Context, id int64) (*models.KeyMoment, error)
	Update(ctx context.Context, id int64, upd models.KeyMomentUpdate) (*models.KeyMoment, error)
	Delete(ctx context.Context, id int64) error
	ListByCurve(ctx context.Context, curve int64) ([]models.KeyMoment, error)
}
