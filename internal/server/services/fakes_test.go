package services

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/eduhub/eduhub/internal/common"
	"github.com/eduhub/eduhub/internal/dbx"
	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/eduhub/eduhub/internal/server/repositories/classes"
	"github.com/eduhub/eduhub/internal/server/repositories/classusers"
	"github.com/eduhub/eduhub/internal/server/repositories/clientaccounts"
	"github.com/eduhub/eduhub/internal/server/repositories/clients"
	"github.com/eduhub/eduhub/internal/server/repositories/envhistory"
	"github.com/eduhub/eduhub/internal/server/repositories/environments"
	"github.com/eduhub/eduhub/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// memUsers is an in-memory users.Repository with a unique email index.
type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*models.User

	getErr    error
	createErr error
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[int64]*models.User{}}
}

func (m *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return nil, common.ErrEmailTaken
		}
	}
	m.nextID++
	u.ID = m.nextID
	cp := *u
	m.byID[u.ID] = &cp
	return u, nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) List(context.Context) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.User, 0, len(m.byID))
	for id := int64(1); id <= m.nextID; id++ {
		if u, ok := m.byID[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memUsers) Update(_ context.Context, id int64, c users.Changes) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if c.Email != nil {
		for _, other := range m.byID {
			if other.ID != id && other.Email == *c.Email {
				return nil, common.ErrEmailTaken
			}
		}
		u.Email = *c.Email
	}
	if c.FirstName != nil {
		u.FirstName = *c.FirstName
	}
	if c.LastName != nil {
		u.LastName = *c.LastName
	}
	if c.Phone != nil {
		u.Phone = c.Phone
	}
	if c.PasswordHash != nil {
		u.PasswordHash = *c.PasswordHash
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Delete(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(m.byID, id)
	return u, nil
}

func (m *memUsers) ListClasses(_ context.Context, id int64) ([]*models.UserClass, error) {
	if _, err := m.GetByID(context.Background(), id); err != nil {
		return nil, err
	}
	return []*models.UserClass{{ClassID: 1, ClassName: "Math", Role: models.RoleStudent}}, nil
}

// fakeHasher marks digests with a prefix instead of running bcrypt.
type fakeHasher struct {
	mu        sync.Mutex
	burns     int
	hashes    int
	verifyErr error
	hashErr   error
}

func (h *fakeHasher) Hash(_ context.Context, pw string) (string, error) {
	h.mu.Lock()
	h.hashes++
	h.mu.Unlock()
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + pw, nil
}

func (h *fakeHasher) Verify(_ context.Context, pw, digest string) (bool, error) {
	if h.verifyErr != nil {
		return false, h.verifyErr
	}
	if !strings.HasPrefix(digest, "hashed:") {
		return false, common.ErrMalformedHash
	}
	return digest == "hashed:"+pw, nil
}

func (h *fakeHasher) Burn(context.Context, string) {
	h.mu.Lock()
	h.burns++
	h.mu.Unlock()
}

type fakeRepoManager struct {
	u   users.Repository
	c   clients.Repository
	ca  clientaccounts.Repository
	cl  classes.Repository
	cu  classusers.Repository
	env environments.Repository
	eh  envhistory.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error      { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                   { return m.u }
func (m *fakeRepoManager) Clients(dbx.DBTX) clients.Repository               { return m.c }
func (m *fakeRepoManager) ClientAccounts(dbx.DBTX) clientaccounts.Repository { return m.ca }
func (m *fakeRepoManager) Classes(dbx.DBTX) classes.Repository               { return m.cl }
func (m *fakeRepoManager) ClassUsers(dbx.DBTX) classusers.Repository         { return m.cu }
func (m *fakeRepoManager) Environments(dbx.DBTX) environments.Repository     { return m.env }
func (m *fakeRepoManager) EnvironmentHistory(dbx.DBTX) envhistory.Repository { return m.eh }
