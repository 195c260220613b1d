// Package clients stores schools and their license terms.
package clients

import (
	"context"
	"fmt"

	"github.com/eduhub/eduhub/internal/dbx"
	"github.com/eduhub/eduhub/internal/server/models"
)

const clientColumns = `client_id, api_key, school_name, subscription_type, start_date, end_date, autorenew`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanClient(row dbx.Scanner) (*models.Client, error) {
	c := &models.Client{}
	err := row.Scan(&c.ID, &c.APIKey, &c.SchoolName, &c.SubscriptionType, &c.StartDate, &c.EndDate, &c.Autorenew)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY client_id`)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	result := make([]*models.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, dbx.Classify(err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE client_id = $1`, id))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	query :=
		`INSERT INTO clients (api_key, school_name, subscription_type, start_date, end_date, autorenew)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING ` + clientColumns

	c, err := scanClient(r.db.QueryRowContext(ctx, query,
		client.APIKey, client.SchoolName, string(client.SubscriptionType),
		client.StartDate, client.EndDate, client.Autorenew))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, upd *models.ClientUpdate) (*models.Client, error) {
	var p dbx.Patch
	if upd.APIKey != nil {
		p.Set("api_key", *upd.APIKey)
	}
	if upd.SchoolName != nil {
		p.Set("school_name", *upd.SchoolName)
	}
	if upd.SubscriptionType != nil {
		p.Set("subscription_type", string(*upd.SubscriptionType))
	}
	if upd.StartDate != nil {
		p.Set("start_date", *upd.StartDate)
	}
	if upd.EndDate != nil {
		p.Set("end_date", *upd.EndDate)
	}
	if upd.Autorenew != nil {
		p.Set("autorenew", *upd.Autorenew)
	}
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	set, args := p.Clause()
	query := fmt.Sprintf(`UPDATE clients SET %s WHERE client_id = $%d RETURNING %s`, set, len(args)+1, clientColumns)

	c, err := scanClient(r.db.QueryRowContext(ctx, query, append(args, id)...))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (*models.Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx, `DELETE FROM clients WHERE client_id = $1 RETURNING `+clientColumns, id))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return c, nil
}

var _ Repository = (*PostgresRepository)(nil)
