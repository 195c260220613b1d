// Package clientaccounts links users to the client that licenses them.
package clientaccounts

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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.ClientAccount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT client_id, user_id FROM client_accounts ORDER BY client_id, user_id`)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	result := make([]*models.ClientAccount, 0)
	for rows.Next() {
		a := &models.ClientAccount{}
		if err := rows.Scan(&a.ClientID, &a.UserID); err != nil {
			return nil, dbx.Classify(err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, clientID, userID int64) (*models.ClientAccount, error) {
	query :=
		`SELECT client_id, user_id FROM client_accounts
		 WHERE client_id = $1 AND user_id = $2
		 `

	a := &models.ClientAccount{}
	if err := r.db.QueryRowContext(ctx, query, clientID, userID).Scan(&a.ClientID, &a.UserID); err != nil {
		return nil, dbx.Classify(err)
	}
	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.ClientAccount) (*models.ClientAccount, error) {
	query :=
		`INSERT INTO client_accounts (client_id, user_id)
		 VALUES ($1, $2)
		 RETURNING client_id, user_id
		 `

	a := &models.ClientAccount{}
	if err := r.db.QueryRowContext(ctx, query, account.ClientID, account.UserID).Scan(&a.ClientID, &a.UserID); err != nil {
		return nil, dbx.Classify(err)
	}
	return a, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, clientID, userID int64) (*models.ClientAccount, error) {
	query :=
		`DELETE FROM client_accounts
		 WHERE client_id = $1 AND user_id = $2
		 RETURNING client_id, user_id
		 `

	a := &models.ClientAccount{}
	if err := r.db.QueryRowContext(ctx, query, clientID, userID).Scan(&a.ClientID, &a.UserID); err != nil {
		return nil, dbx.Classify(err)
	}
	return a, nil
}

var _ Repository = (*PostgresRepository)(nil)
