package repomanager

import (
	"context"
	"database/sql"

	"github.com/eduhub/eduhub/internal/dbx"
	"github.com/eduhub/eduhub/internal/server/repositories/classes"
	"github.com/eduhub/eduhub/internal/server/repositories/classusers"
	"github.com/eduhub/eduhub/internal/server/repositories/clientaccounts"
	"github.com/eduhub/eduhub/internal/server/repositories/clients"
	"github.com/eduhub/eduhub/internal/server/repositories/envhistory"
	"github.com/eduhub/eduhub/internal/server/repositories/environments"
	"github.com/eduhub/eduhub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Clients(db dbx.DBTX) clients.Repository
	ClientAccounts(db dbx.DBTX) clientaccounts.Repository
	Classes(db dbx.DBTX) classes.Repository
	ClassUsers(db dbx.DBTX) classusers.Repository
	Environments(db dbx.DBTX) environments.Repository
	EnvironmentHistory(db dbx.DBTX) envhistory.Repository
}
