package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eduhub/eduhub/internal/common"
	"github.com/eduhub/eduhub/internal/dbx"
	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/eduhub/eduhub/internal/server/repositories/repomanager"
	"github.com/eduhub/eduhub/internal/server/repositories/users"
)

// UserService manages users. Every result has its credential stripped.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher PasswordHasher) *UserService {
	return &UserService{db: db, repomanager: m, hasher: hasher}
}

func (s *UserService) List(ctx context.Context) ([]models.PublicUser, error) {
	list, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	return models.PublicUsers(list), nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.PublicUser, error) {
	u, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p := u.Public()
	return &p, nil
}

// Create stores a new user with a hashed password.
func (s *UserService) Create(ctx context.Context, in models.NewUser) (*models.PublicUser, error) {
	u, err := createUser(ctx, s.repomanager.Users(s.db), s.hasher, in)
	if err != nil {
		return nil, err
	}
	p := u.Public()
	return &p, nil
}

// Update applies a partial update; a new password is hashed before storage.
func (s *UserService) Update(ctx context.Context, id int64, upd *models.UserUpdate) (*models.PublicUser, error) {
	changes := users.Changes{
		FirstName: upd.FirstName,
		LastName:  upd.LastName,
		Email:     upd.Email,
		Phone:     upd.Phone,
	}
	if upd.Password != nil {
		digest, err := s.hasher.Hash(ctx, *upd.Password)
		if err != nil {
			return nil, err
		}
		changes.PasswordHash = &digest
	}

	u, err := s.repomanager.Users(s.db).Update(ctx, id, changes)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, err
	}
	p := u.Public()
	return &p, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (*models.PublicUser, error) {
	u, err := s.repomanager.Users(s.db).Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	p := u.Public()
	return &p, nil
}

// Classes lists the classes of a user with the user's role in each.
func (s *UserService) Classes(ctx context.Context, id int64) ([]*models.UserClass, error) {
	return readSnapshot(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) ([]*models.UserClass, error) {
		return s.repomanager.Users(tx).ListClasses(ctx, id)
	})
}
