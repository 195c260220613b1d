// Package envhistory stores the messages exchanged by users inside an
// environment, oldest first.
package envhistory

import (
	"context"
	"database/sql"

	"github.com/eduhub/eduhub/internal/dbx"
	"github.com/eduhub/eduhub/internal/server/models"
)

const historyColumns = `history_id, environment_id, user_id, created_at, message, message_type`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanEntry(row dbx.Scanner) (*models.HistoryEntry, error) {
	h := &models.HistoryEntry{}
	if err := row.Scan(&h.ID, &h.EnvironmentID, &h.UserID, &h.Timestamp, &h.Message, &h.MessageType); err != nil {
		return nil, err
	}
	return h, nil
}

func collect(rows *sql.Rows) ([]*models.HistoryEntry, error) {
	defer rows.Close()

	result := make([]*models.HistoryEntry, 0)
	for rows.Next() {
		h, err := scanEntry(rows)
		if err != nil {
			return nil, dbx.Classify(err)
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(err)
	}
	return result, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+historyColumns+` FROM environment_history ORDER BY created_at, history_id`)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return collect(rows)
}

func (r *PostgresRepository) ListByEnvironmentUser(ctx context.Context, environmentID, userID int64) ([]*models.HistoryEntry, error) {
	query :=
		`SELECT ` + historyColumns + ` FROM environment_history
		 WHERE environment_id = $1 AND user_id = $2
		 ORDER BY created_at, history_id
		 `

	rows, err := r.db.QueryContext(ctx, query, environmentID, userID)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return collect(rows)
}

// Create inserts entry. A zero Timestamp lets the database stamp it.
func (r *PostgresRepository) Create(ctx context.Context, entry *models.HistoryEntry) (*models.HistoryEntry, error) {
	query :=
		`INSERT INTO environment_history (environment_id, user_id, created_at, message, message_type)
		 VALUES ($1, $2, COALESCE($3::timestamptz, now()), $4, $5)
		 RETURNING ` + historyColumns

	var ts any
	if !entry.Timestamp.IsZero() {
		ts = entry.Timestamp
	}

	h, err := scanEntry(r.db.QueryRowContext(ctx, query,
		entry.EnvironmentID, entry.UserID, ts, entry.Message, string(entry.MessageType)))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return h, nil
}

func (r *PostgresRepository) DeleteByEnvironmentUser(ctx context.Context, environmentID, userID int64) ([]*models.HistoryEntry, error) {
	query :=
		`DELETE FROM environment_history
		 WHERE environment_id = $1 AND user_id = $2
		 RETURNING ` + historyColumns

	rows, err := r.db.QueryContext(ctx, query, environmentID, userID)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return collect(rows)
}

var _ Repository = (*PostgresRepository)(nil)
