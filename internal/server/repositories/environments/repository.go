package environments

import (
	"context"

	"github.com/eduhub/eduhub/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Environment, error)
	GetByID(ctx context.Context, id int64) (*models.Environment, error)
	Create(ctx context.Context, env *models.Environment) (*models.Environment, error)
	Update(ctx context.Context, id int64, upd *models.EnvironmentUpdate) (*models.Environment, error)
	Delete(ctx context.Context, id int64) (*models.Environment, error)
}
