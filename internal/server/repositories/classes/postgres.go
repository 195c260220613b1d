// Package classes stores classes and answers the class-side joins
// (environments of a class, members of a class).
package classes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eduhub/eduhub/internal/dbx"
	"github.com/eduhub/eduhub/internal/server/models"
)

const classColumns = `class_id, class_name, class_reference, client_id`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanClass(row dbx.Scanner) (*models.Class, error) {
	c := &models.Class{}
	if err := row.Scan(&c.ID, &c.ClassName, &c.ClassReference, &c.ClientID); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Class, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+classColumns+` FROM classes ORDER BY class_id`)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	result := make([]*models.Class, 0)
	for rows.Next() {
		c, err := scanClass(rows)
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

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	c, err := scanClass(r.db.QueryRowContext(ctx, `SELECT `+classColumns+` FROM classes WHERE class_id = $1`, id))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, class *models.Class) (*models.Class, error) {
	query :=
		`INSERT INTO classes (class_name, class_reference, client_id)
		 VALUES ($1, $2, $3)
		 RETURNING ` + classColumns

	c, err := scanClass(r.db.QueryRowContext(ctx, query, class.ClassName, class.ClassReference, class.ClientID))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, upd *models.ClassUpdate) (*models.Class, error) {
	var p dbx.Patch
	if upd.ClassName != nil {
		p.Set("class_name", *upd.ClassName)
	}
	if upd.ClassReference != nil {
		p.Set("class_reference", *upd.ClassReference)
	}
	if upd.ClientID != nil {
		p.Set("client_id", *upd.ClientID)
	}
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	set, args := p.Clause()
	query := fmt.Sprintf(`UPDATE classes SET %s WHERE class_id = $%d RETURNING %s`, set, len(args)+1, classColumns)

	c, err := scanClass(r.db.QueryRowContext(ctx, query, append(args, id)...))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (*models.Class, error) {
	c, err := scanClass(r.db.QueryRowContext(ctx, `DELETE FROM classes WHERE class_id = $1 RETURNING `+classColumns, id))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return c, nil
}

// ListEnvironments returns the environments of class id. An unknown class
// yields common.ErrorNotFound; a class without environments an empty slice.
func (r *PostgresRepository) ListEnvironments(ctx context.Context, id int64) ([]*models.Environment, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}

	query :=
		`SELECT environment_id, class_id, environment_name, environment_description, settings, active_status
		 FROM environments
		 WHERE class_id = $1
		 ORDER BY environment_id
		 `

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	result := make([]*models.Environment, 0)
	for rows.Next() {
		e := &models.Environment{}
		var settings []byte
		if err := rows.Scan(&e.ID, &e.ClassID, &e.Name, &e.Description, &settings, &e.ActiveStatus); err != nil {
			return nil, dbx.Classify(err)
		}
		e.Settings = json.RawMessage(settings)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(err)
	}
	return result, nil
}

// ListMembers returns the users of class id with their role.
func (r *PostgresRepository) ListMembers(ctx context.Context, id int64) ([]*models.ClassMember, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}

	query :=
		`SELECT u.user_id, u.first_name, u.last_name, u.email, cu.role
		 FROM class_users cu
		 JOIN users u ON u.user_id = cu.user_id
		 WHERE cu.class_id = $1
		 ORDER BY u.user_id
		 `

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	result := make([]*models.ClassMember, 0)
	for rows.Next() {
		m := &models.ClassMember{}
		if err := rows.Scan(&m.UserID, &m.FirstName, &m.LastName, &m.Email, &m.Role); err != nil {
			return nil, dbx.Classify(err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(err)
	}
	return result, nil
}

var _ Repository = (*PostgresRepository)(nil)
