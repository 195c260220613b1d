package classusers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/eduhub/eduhub/internal/common"
	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"class_id", "user_id", "role"}

func newRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestList(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`SELECT class_id, user_id, role FROM class_users ORDER BY`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), int64(2), "student"))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*models.ClassUser{{ClassID: 1, UserID: 2, Role: models.RoleStudent}}, got)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`(?s)FROM class_users\s+WHERE class_id = \$1 AND user_id = \$2`).
		WithArgs(int64(1), int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 1, 2)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`INSERT INTO class_users`).
		WithArgs(int64(1), int64(2), "teacher").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "class_users_pkey"})

	_, err := repo.Create(context.Background(), &models.ClassUser{ClassID: 1, UserID: 2, Role: models.RoleTeacher})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestUpdateRole(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`(?s)UPDATE class_users SET role = \$3\s+WHERE class_id = \$1 AND user_id = \$2`).
		WithArgs(int64(1), int64(2), "admin").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), int64(2), "admin"))

	got, err := repo.UpdateRole(context.Background(), 1, 2, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`(?s)DELETE FROM class_users\s+WHERE`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), int64(2), "student"))

	got, err := repo.Delete(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ClassID)
}
