package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/eduhub/eduhub/internal/logging"
	"github.com/eduhub/eduhub/internal/server/config"
	"github.com/eduhub/eduhub/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	repomanager.RepositoryManager
	migrateErr error
	migrated   bool
}

func (f *fakeManager) RunMigrations(context.Context, *sql.DB) error {
	f.migrated = true
	return f.migrateErr
}

func stubDB(t *testing.T, openErr error) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	orig := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		if driver != "pgx" {
			return nil, errors.New("unexpected driver " + driver)
		}
		if openErr != nil {
			return nil, openErr
		}
		return db, nil
	}
	t.Cleanup(func() { sqlOpen = orig })
	return mock
}

func stubManager(t *testing.T, m *fakeManager) {
	t.Helper()
	orig := newRepositoryManager
	newRepositoryManager = func() repomanager.RepositoryManager { return m }
	t.Cleanup(func() { newRepositoryManager = orig })
}

func testConfig() *config.Config {
	return &config.Config{
		EndpointAddrHTTP:            "127.0.0.1:0",
		DatabaseDSN:                 "postgres://test",
		SecretKey:                   "s3cret",
		AccessTokenValidityDuration: time.Hour,
		LogLevel:                    "error",
	}
}

func TestNewApp_OpenError(t *testing.T) {
	stubDB(t, errors.New("bad dsn"))
	stubManager(t, &fakeManager{})

	_, err := newApp(context.Background(), testConfig(), logging.Nop{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db open error")
}

func TestNewApp_PingError(t *testing.T) {
	mock := stubDB(t, nil)
	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()
	m := &fakeManager{}
	stubManager(t, m)

	_, err := newApp(context.Background(), testConfig(), logging.Nop{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db ping error")
	assert.False(t, m.migrated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewApp_MigrationError(t *testing.T) {
	mock := stubDB(t, nil)
	mock.ExpectPing()
	mock.ExpectClose()
	stubManager(t, &fakeManager{migrateErr: errors.New("dirty")})

	_, err := newApp(context.Background(), testConfig(), logging.Nop{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	mock := stubDB(t, nil)
	mock.ExpectPing()
	mock.ExpectClose()
	m := &fakeManager{}
	stubManager(t, m)

	app, err := newApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)
	assert.True(t, m.migrated)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewServices_AllSet(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewServices(db, &fakeManager{}, testConfig())
	assert.NotNil(t, svc.Auth)
	assert.NotNil(t, svc.Users)
	assert.NotNil(t, svc.Clients)
	assert.NotNil(t, svc.ClientAccounts)
	assert.NotNil(t, svc.Classes)
	assert.NotNil(t, svc.ClassUsers)
	assert.NotNil(t, svc.Environments)
	assert.NotNil(t, svc.EnvironmentHistory)
}
