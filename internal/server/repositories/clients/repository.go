package clients

import (
	"context"

	"github.com/eduhub/eduhub/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Client, error)
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) (*models.Client, error)
	Update(ctx context.Context, id int64, upd *models.ClientUpdate) (*models.Client, error)
	Delete(ctx context.Context, id int64) (*models.Client, error)
}
