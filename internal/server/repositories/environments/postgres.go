// Package environments stores the learning environments attached to classes.
package environments

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eduhub/eduhub/internal/dbx"
	"github.com/eduhub/eduhub/internal/server/models"
)

const envColumns = `environment_id, class_id, environment_name, environment_description, settings, active_status`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanEnvironment(row dbx.Scanner) (*models.Environment, error) {
	e := &models.Environment{}
	var settings []byte
	if err := row.Scan(&e.ID, &e.ClassID, &e.Name, &e.Description, &settings, &e.ActiveStatus); err != nil {
		return nil, err
	}
	e.Settings = json.RawMessage(settings)
	return e, nil
}

// settingsArg passes jsonb as text; empty settings become NULL so the
// column default applies.
func settingsArg(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Environment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+envColumns+` FROM environments ORDER BY environment_id`)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	result := make([]*models.Environment, 0)
	for rows.Next() {
		e, err := scanEnvironment(rows)
		if err != nil {
			return nil, dbx.Classify(err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Environment, error) {
	e, err := scanEnvironment(r.db.QueryRowContext(ctx, `SELECT `+envColumns+` FROM environments WHERE environment_id = $1`, id))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, env *models.Environment) (*models.Environment, error) {
	query :=
		`INSERT INTO environments (class_id, environment_name, environment_description, settings, active_status)
		 VALUES ($1, $2, $3, COALESCE($4::jsonb, '{}'::jsonb), $5)
		 RETURNING ` + envColumns

	e, err := scanEnvironment(r.db.QueryRowContext(ctx, query,
		env.ClassID, env.Name, env.Description, settingsArg(env.Settings), env.ActiveStatus))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, upd *models.EnvironmentUpdate) (*models.Environment, error) {
	var p dbx.Patch
	if upd.ClassID != nil {
		p.Set("class_id", *upd.ClassID)
	}
	if upd.Name != nil {
		p.Set("environment_name", *upd.Name)
	}
	if upd.Description != nil {
		p.Set("environment_description", *upd.Description)
	}
	if len(upd.Settings) > 0 {
		p.Set("settings", string(upd.Settings))
	}
	if upd.ActiveStatus != nil {
		p.Set("active_status", *upd.ActiveStatus)
	}
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	set, args := p.Clause()
	query := fmt.Sprintf(`UPDATE environments SET %s WHERE environment_id = $%d RETURNING %s`, set, len(args)+1, envColumns)

	e, err := scanEnvironment(r.db.QueryRowContext(ctx, query, append(args, id)...))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return e, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (*models.Environment, error) {
	e, err := scanEnvironment(r.db.QueryRowContext(ctx, `DELETE FROM environments WHERE environment_id = $1 RETURNING `+envColumns, id))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return e, nil
}

var _ Repository = (*PostgresRepository)(nil)
