package courses

import (
	"context"

	"github.com/CARE-UiT/Reflectometer/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, course *models.Course) (*models.Course, error)
	Get(ctx context.Context, id int64) (*models.Course, error)
	Update(ctx context.Context, id int64, upd models.CourseUpdate) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, owner int64) ([]models.Course, error)
}
