package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	body, err := fs.ReadFile(Migrations, "00001_init.sql")
	require.NoError(t, err)

	sql := string(body)
	assert.Contains(t, sql, "-- +goose Up")
	assert.Contains(t, sql, "-- +goose Down")
	assert.Contains(t, sql, "CONSTRAINT users_email_key UNIQUE (email)")
	for _, table := range []string{"users", "clients", "client_accounts", "classes", "class_users", "environments", "environment_history"} {
		assert.True(t, strings.Contains(sql, "CREATE TABLE "+table+" ("), table)
	}
}
