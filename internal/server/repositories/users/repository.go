package users

import (
	"context"

	"github.com/eduhub/eduhub/internal/server/models"
)

// Changes is a partial update of a users row. PasswordHash is already a
// bcrypt digest.
type Changes struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	PasswordHash *string
}

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id int64, changes Changes) (*models.User, error)
	Delete(ctx context.Context, id int64) (*models.User, error)
	ListClasses(ctx context.Context, id int64) ([]*models.UserClass, error)
}
