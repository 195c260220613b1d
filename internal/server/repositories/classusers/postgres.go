// Package classusers stores class memberships and the member's role.
package classusers

import (
	"context"

	"github.com/eduhub/eduhub/internal/dbx"
	"github.com/eduhub/eduhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scan(row dbx.Scanner) (*models.ClassUser, error) {
	cu := &models.ClassUser{}
	if err := row.Scan(&cu.ClassID, &cu.UserID, &cu.Role); err != nil {
		return nil, dbx.Classify(err)
	}
	return cu, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.ClassUser, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT class_id, user_id, role FROM class_users ORDER BY class_id, user_id`)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	result := make([]*models.ClassUser, 0)
	for rows.Next() {
		cu, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, cu)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, classID, userID int64) (*models.ClassUser, error) {
	query :=
		`SELECT class_id, user_id, role FROM class_users
		 WHERE class_id = $1 AND user_id = $2
		 `
	return scan(r.db.QueryRowContext(ctx, query, classID, userID))
}

func (r *PostgresRepository) Create(ctx context.Context, cu *models.ClassUser) (*models.ClassUser, error) {
	query :=
		`INSERT INTO class_users (class_id, user_id, role)
		 VALUES ($1, $2, $3)
		 RETURNING class_id, user_id, role
		 `
	return scan(r.db.QueryRowContext(ctx, query, cu.ClassID, cu.UserID, string(cu.Role)))
}

func (r *PostgresRepository) UpdateRole(ctx context.Context, classID, userID int64, role models.Role) (*models.ClassUser, error) {
	query :=
		`UPDATE class_users SET role = $3
		 WHERE class_id = $1 AND user_id = $2
		 RETURNING class_id, user_id, role
		 `
	return scan(r.db.QueryRowContext(ctx, query, classID, userID, string(role)))
}

func (r *PostgresRepository) Delete(ctx context.Context, classID, userID int64) (*models.ClassUser, error) {
	query :=
		`DELETE FROM class_users
		 WHERE class_id = $1 AND user_id = $2
		 RETURNING class_id, user_id, role
		 `
	return scan(r.db.QueryRowContext(ctx, query, classID, userID))
}

var _ Repository = (*PostgresRepository)(nil)
