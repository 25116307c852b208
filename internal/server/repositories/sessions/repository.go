package sessions

import (
	"context"

	"github.com/CARE-UiT/Reflectometer/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, session *models.Session) (*models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Update(ctx context.Context, id string, upd models.SessionUpdate) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	ListByCourse(ctx context.Context, course int64) ([]models.Session, error)
}
