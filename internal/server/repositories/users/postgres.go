// Package users is the credential store: the users table.
package users

import (
	"context"
	"fmt"

	"github.com/eduhub/eduhub/internal/common"
	"github.com/eduhub/eduhub/internal/dbx"
	"github.com/eduhub/eduhub/internal/server/models"
)

const userColumns = `user_id, first_name, last_name, email, phone, password`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanUser(row dbx.Scanner) (*models.User, error) {
	u := &models.User{}
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.PasswordHash); err != nil {
		return nil, err
	}
	return u, nil
}

// classify maps the email unique constraint onto ErrEmailTaken; the rest
// follows dbx.Classify.
func classify(err error) error {
	if dbx.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", common.ErrEmailTaken, err)
	}
	return dbx.Classify(err)
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (first_name, last_name, email, phone, password)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING user_id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.Phone, user.PasswordHash).Scan(&user.ID)

	if err != nil {
		return nil, classify(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, classify(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify(err)
	}

	return user, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY user_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	result := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, classify(err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return result, nil
}

// Update applies the non-nil fields of changes. With nothing to change it
// returns the current row.
func (r *PostgresRepository) Update(ctx context.Context, id int64, changes Changes) (*models.User, error) {
	var p dbx.Patch
	if changes.FirstName != nil {
		p.Set("first_name", *changes.FirstName)
	}
	if changes.LastName != nil {
		p.Set("last_name", *changes.LastName)
	}
	if changes.Email != nil {
		p.Set("email", *changes.Email)
	}
	if changes.Phone != nil {
		p.Set("phone", *changes.Phone)
	}
	if changes.PasswordHash != nil {
		p.Set("password", *changes.PasswordHash)
	}
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	set, args := p.Clause()
	query := fmt.Sprintf(`UPDATE users SET %s WHERE user_id = $%d RETURNING %s`, set, len(args)+1, userColumns)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, append(args, id)...))
	if err != nil {
		return nil, classify(err)
	}

	return user, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (*models.User, error) {
	query := `DELETE FROM users WHERE user_id = $1 RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify(err)
	}

	return user, nil
}

// ListClasses returns the classes id belongs to together with its role in
// each. An unknown user yields common.ErrorNotFound.
func (r *PostgresRepository) ListClasses(ctx context.Context, id int64) ([]*models.UserClass, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}

	query :=
		`SELECT c.class_id, c.class_name, c.class_reference, cu.role
		 FROM class_users cu
		 JOIN classes c ON c.class_id = cu.class_id
		 WHERE cu.user_id = $1
		 ORDER BY c.class_id
		 `

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	result := make([]*models.UserClass, 0)
	for rows.Next() {
		c := &models.UserClass{}
		if err := rows.Scan(&c.ClassID, &c.ClassName, &c.ClassReference, &c.Role); err != nil {
			return nil, dbx.Classify(err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(err)
	}

	return result, nil
}

var _ Repository = (*PostgresRepository)(nil)
