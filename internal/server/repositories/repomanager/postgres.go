// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/eduhub/eduhub/internal/dbx"
	"github.com/eduhub/eduhub/internal/server/migrations"
	"github.com/eduhub/eduhub/internal/server/repositories/classes"
	"github.com/eduhub/eduhub/internal/server/repositories/classusers"
	"github.com/eduhub/eduhub/internal/server/repositories/clientaccounts"
	"github.com/eduhub/eduhub/internal/server/repositories/clients"
	"github.com/eduhub/eduhub/internal/server/repositories/envhistory"
	"github.com/eduhub/eduhub/internal/server/repositories/environments"
	"github.com/eduhub/eduhub/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories bound to
// either the pool or a transaction.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Clients(db dbx.DBTX) clients.Repository {
	return clients.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) ClientAccounts(db dbx.DBTX) clientaccounts.Repository {
	return clientaccounts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Classes(db dbx.DBTX) classes.Repository {
	return classes.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) ClassUsers(db dbx.DBTX) classusers.Repository {
	return classusers.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Environments(db dbx.DBTX) environments.Repository {
	return environments.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) EnvironmentHistory(db dbx.DBTX) envhistory.Repository {
	return envhistory.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
