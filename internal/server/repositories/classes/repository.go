package classes

import (
	"context"

	"github.com/eduhub/eduhub/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Class, error)
	GetByID(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) (*models.Class, error)
	Update(ctx context.Context, id int64, upd *models.ClassUpdate) (*models.Class, error)
	Delete(ctx context.Context, id int64) (*models.Class, error)
	ListEnvironments(ctx context.Context, id int64) ([]*models.Environment, error)
	ListMembers(ctx context.Context, id int64) ([]*models.ClassMember, error)
}
