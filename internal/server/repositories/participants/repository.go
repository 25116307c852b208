package participants

import (
	"context"

	"github.com/CARE-UiT/Reflectometer/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, participant *models.Participant) (*models.Participant, error)
	Get(ctx context.Context, id int64) (*models.Participant, error)
	Delete(ctx context.Context, id int64) error
	ListByCourse(ctx context.Context, course int64) ([]models.Participant, error)
}
