package services

import (
	"context"
	"database/sql"

	"github.com/eduhub/eduhub/internal/dbx"
)

var snapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// readSnapshot runs fn in a read-only repeatable-read transaction, so a
// parent existence check and the list that follows agree.
func readSnapshot[T any](ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) (T, error)) (T, error) {
	var out T
	err := dbx.WithTx(ctx, db, snapshot, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		out, err = fn(ctx, tx)
		return err
	})
	return out, err
}
