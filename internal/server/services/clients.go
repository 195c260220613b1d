package services

import (
	"context"
	"database/sql"

	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/eduhub/eduhub/internal/server/repositories/repomanager"
)

type ClientService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewClientService(db *sql.DB, m repomanager.RepositoryManager) *ClientService {
	return &ClientService{db: db, repomanager: m}
}

func (s *ClientService) List(ctx context.Context) ([]*models.Client, error) {
	return s.repomanager.Clients(s.db).List(ctx)
}

func (s *ClientService) Get(ctx context.Context, id int64) (*models.Client, error) {
	return s.repomanager.Clients(s.db).GetByID(ctx, id)
}

// Create stores a client; a missing subscription type means inactive.
func (s *ClientService) Create(ctx context.Context, c *models.Client) (*models.Client, error) {
	if c.SubscriptionType == "" {
		c.SubscriptionType = models.SubscriptionInactive
	}
	return s.repomanager.Clients(s.db).Create(ctx, c)
}

func (s *ClientService) Update(ctx context.Context, id int64, upd *models.ClientUpdate) (*models.Client, error) {
	return s.repomanager.Clients(s.db).Update(ctx, id, upd)
}

func (s *ClientService) Delete(ctx context.Context, id int64) (*models.Client, error) {
	return s.repomanager.Clients(s.db).Delete(ctx, id)
}

type ClientAccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewClientAccountService(db *sql.DB, m repomanager.RepositoryManager) *ClientAccountService {
	return &ClientAccountService{db: db, repomanager: m}
}

func (s *ClientAccountService) List(ctx context.Context) ([]*models.ClientAccount, error) {
	return s.repomanager.ClientAccounts(s.db).List(ctx)
}

func (s *ClientAccountService) Get(ctx context.Context, clientID, userID int64) (*models.ClientAccount, error) {
	return s.repomanager.ClientAccounts(s.db).Get(ctx, clientID, userID)
}

func (s *ClientAccountService) Create(ctx context.Context, a *models.ClientAccount) (*models.ClientAccount, error) {
	return s.repomanager.ClientAccounts(s.db).Create(ctx, a)
}

func (s *ClientAccountService) Delete(ctx context.Context, clientID, userID int64) (*models.ClientAccount, error) {
	return s.repomanager.ClientAccounts(s.db).Delete(ctx, clientID, userID)
}
