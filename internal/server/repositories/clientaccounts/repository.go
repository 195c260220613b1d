package clientaccounts

import (
	"context"

	"github.com/eduhub/eduhub/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.ClientAccount, error)
	Get(ctx context.Context, clientID, userID int64) (*models.ClientAccount, error)
	Create(ctx context.Context, account *models.ClientAccount) (*models.ClientAccount, error)
	Delete(ctx context.Context, clientID, userID int64) (*models.ClientAccount, error)
}
