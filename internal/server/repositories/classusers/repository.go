package classusers

import (
	"context"

	"github.com/eduhub/eduhub/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.ClassUser, error)
	Get(ctx context.Context, classID, userID int64) (*models.ClassUser, error)
	Create(ctx context.Context, cu *models.ClassUser) (*models.ClassUser, error)
	UpdateRole(ctx context.Context, classID, userID int64, role models.Role) (*models.ClassUser, error)
	Delete(ctx context.Context, classID, userID int64) (*models.ClassUser, error)
}
