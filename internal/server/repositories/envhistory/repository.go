package envhistory

import (
	"context"

	"github.com/eduhub/eduhub/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.HistoryEntry, error)
	ListByEnvironmentUser(ctx context.Context, environmentID, userID int64) ([]*models.HistoryEntry, error)
	Create(ctx context.Context, entry *models.HistoryEntry) (*models.HistoryEntry, error)
	DeleteByEnvironmentUser(ctx context.Context, environmentID, userID int64) ([]*models.HistoryEntry, error)
}
