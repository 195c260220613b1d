package services

import (
	"context"
	"database/sql"

	"github.com/eduhub/eduhub/internal/common"
	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/eduhub/eduhub/internal/server/repositories/repomanager"
)

type EnvironmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEnvironmentService(db *sql.DB, m repomanager.RepositoryManager) *EnvironmentService {
	return &EnvironmentService{db: db, repomanager: m}
}

func (s *EnvironmentService) List(ctx context.Context) ([]*models.Environment, error) {
	return s.repomanager.Environments(s.db).List(ctx)
}

func (s *EnvironmentService) Get(ctx context.Context, id int64) (*models.Environment, error) {
	return s.repomanager.Environments(s.db).GetByID(ctx, id)
}

func (s *EnvironmentService) Create(ctx context.Context, e *models.Environment) (*models.Environment, error) {
	return s.repomanager.Environments(s.db).Create(ctx, e)
}

func (s *EnvironmentService) Update(ctx context.Context, id int64, upd *models.EnvironmentUpdate) (*models.Environment, error) {
	return s.repomanager.Environments(s.db).Update(ctx, id, upd)
}

func (s *EnvironmentService) Delete(ctx context.Context, id int64) (*models.Environment, error) {
	return s.repomanager.Environments(s.db).Delete(ctx, id)
}

type EnvironmentHistoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEnvironmentHistoryService(db *sql.DB, m repomanager.RepositoryManager) *EnvironmentHistoryService {
	return &EnvironmentHistoryService{db: db, repomanager: m}
}

func (s *EnvironmentHistoryService) List(ctx context.Context) ([]*models.HistoryEntry, error) {
	return s.repomanager.EnvironmentHistory(s.db).List(ctx)
}

// Conversation returns the messages of one user in one environment, oldest
// first. No messages yields common.ErrorNotFound.
func (s *EnvironmentHistoryService) Conversation(ctx context.Context, environmentID, userID int64) ([]*models.HistoryEntry, error) {
	list, err := s.repomanager.EnvironmentHistory(s.db).ListByEnvironmentUser(ctx, environmentID, userID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, common.ErrorNotFound
	}
	return list, nil
}

func (s *EnvironmentHistoryService) Create(ctx context.Context, h *models.HistoryEntry) (*models.HistoryEntry, error) {
	return s.repomanager.EnvironmentHistory(s.db).Create(ctx, h)
}

// DeleteConversation removes and returns the messages of one user in one
// environment. Nothing to delete yields common.ErrorNotFound.
func (s *EnvironmentHistoryService) DeleteConversation(ctx context.Context, environmentID, userID int64) ([]*models.HistoryEntry, error) {
	list, err := s.repomanager.EnvironmentHistory(s.db).DeleteByEnvironmentUser(ctx, environmentID, userID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, common.ErrorNotFound
	}
	return list, nil
}
