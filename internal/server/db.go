package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eduhub/eduhub/internal/server/repositories/repomanager"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var sqlOpen = sql.Open

// OpenDB connects to PostgreSQL through the pgx driver and brings the schema
// up to date.
func OpenDB(ctx context.Context, dsn string, m repomanager.RepositoryManager) (*sql.DB, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return db, nil
}
