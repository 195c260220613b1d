package services

import (
	"context"
	"database/sql"

	"github.com/eduhub/eduhub/internal/dbx"
	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/eduhub/eduhub/internal/server/repositories/repomanager"
)

type ClassService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewClassService(db *sql.DB, m repomanager.RepositoryManager) *ClassService {
	return &ClassService{db: db, repomanager: m}
}

func (s *ClassService) List(ctx context.Context) ([]*models.Class, error) {
	return s.repomanager.Classes(s.db).List(ctx)
}

func (s *ClassService) Get(ctx context.Context, id int64) (*models.Class, error) {
	return s.repomanager.Classes(s.db).GetByID(ctx, id)
}

func (s *ClassService) Create(ctx context.Context, c *models.Class) (*models.Class, error) {
	return s.repomanager.Classes(s.db).Create(ctx, c)
}

func (s *ClassService) Update(ctx context.Context, id int64, upd *models.ClassUpdate) (*models.Class, error) {
	return s.repomanager.Classes(s.db).Update(ctx, id, upd)
}

func (s *ClassService) Delete(ctx context.Context, id int64) (*models.Class, error) {
	return s.repomanager.Classes(s.db).Delete(ctx, id)
}

func (s *ClassService) Environments(ctx context.Context, id int64) ([]*models.Environment, error) {
	return readSnapshot(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) ([]*models.Environment, error) {
		return s.repomanager.Classes(tx).ListEnvironments(ctx, id)
	})
}

func (s *ClassService) Members(ctx context.Context, id int64) ([]*models.ClassMember, error) {
	return readSnapshot(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) ([]*models.ClassMember, error) {
		return s.repomanager.Classes(tx).ListMembers(ctx, id)
	})
}

type ClassUserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewClassUserService(db *sql.DB, m repomanager.RepositoryManager) *ClassUserService {
	return &ClassUserService{db: db, repomanager: m}
}

func (s *ClassUserService) List(ctx context.Context) ([]*models.ClassUser, error) {
	return s.repomanager.ClassUsers(s.db).List(ctx)
}

func (s *ClassUserService) Get(ctx context.Context, classID, userID int64) (*models.ClassUser, error) {
	return s.repomanager.ClassUsers(s.db).Get(ctx, classID, userID)
}

func (s *ClassUserService) Create(ctx context.Context, cu *models.ClassUser) (*models.ClassUser, error) {
	return s.repomanager.ClassUsers(s.db).Create(ctx, cu)
}

func (s *ClassUserService) UpdateRole(ctx context.Context, classID, userID int64, role models.Role) (*models.ClassUser, error) {
	return s.repomanager.ClassUsers(s.db).UpdateRole(ctx, classID, userID, role)
}

func (s *ClassUserService) Delete(ctx context.Context, classID, userID int64) (*models.ClassUser, error) {
	return s.repomanager.ClassUsers(s.db).Delete(ctx, classID, userID)
}
