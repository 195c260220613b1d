package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/eduhub/eduhub/internal/common"
	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	UserService
	users   map[int64]models.PublicUser
	updated *models.UserUpdate
}

func (f *fakeUsers) List(context.Context) ([]models.PublicUser, error) {
	out := make([]models.PublicUser, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) Get(_ context.Context, id int64) (*models.PublicUser, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (f *fakeUsers) Create(_ context.Context, in models.NewUser) (*models.PublicUser, error) {
	if in.Email == "taken@x.com" {
		return nil, common.ErrEmailTaken
	}
	return &models.PublicUser{ID: 99, Email: in.Email}, nil
}

func (f *fakeUsers) Update(_ context.Context, id int64, upd *models.UserUpdate) (*models.PublicUser, error) {
	f.updated = upd
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	return &u, nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) (*models.PublicUser, error) {
	return nil, errors.New("connection reset")
}

func newUsersServer() (*Server, *fakeUsers) {
	fu := &fakeUsers{users: map[int64]models.PublicUser{1: {ID: 1, FirstName: "A", Email: "a@x.com"}}}
	return newTestServer(Services{Users: fu}), fu
}

func TestUsers_InvalidID(t *testing.T) {
	s, _ := newUsersServer()

	rec := do(t, s, http.MethodGet, "/users/abc", "", validToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid user ID"}`, rec.Body.String())
}

func TestUsers_NotFound(t *testing.T) {
	s, _ := newUsersServer()

	rec := do(t, s, http.MethodGet, "/users/42", "", validToken(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestUsers_GetAndList(t *testing.T) {
	s, _ := newUsersServer()
	tok := validToken(t)

	rec := do(t, s, http.MethodGet, "/users/1", "", tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":1,"first_name":"A","last_name":"","email":"a@x.com","phone":null}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/users", "", tok)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestUsers_Create(t *testing.T) {
	s, _ := newUsersServer()
	tok := validToken(t)

	rec := do(t, s, http.MethodPost, "/users", `{"first_name":"C","last_name":"D","email":"c@x.com","password":"pw"}`, tok)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, s, http.MethodPost, "/users", `{"first_name":"C","last_name":"D","email":"taken@x.com","password":"pw"}`, tok)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, s, http.MethodPost, "/users", `{"email":"c@x.com"}`, tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsers_Update(t *testing.T) {
	s, fu := newUsersServer()

	rec := do(t, s, http.MethodPut, "/users/1", `{"first_name":"Ann","password":"new"}`, validToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"first_name":"Ann"`)
	require.NotNil(t, fu.updated.Password)
	assert.Equal(t, "new", *fu.updated.Password)

	rec = do(t, s, http.MethodPut, "/users/1", `{"password":""}`, validToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsers_UpdateRejectsBlankFields(t *testing.T) {
	s, fu := newUsersServer()
	tok := validToken(t)

	for _, body := range []string{`{"email":""}`, `{"first_name":""}`, `{"last_name":"  "}`} {
		rec := do(t, s, http.MethodPut, "/users/1", body, tok)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"error":"first_name, last_name and email cannot be empty"}`, rec.Body.String())
	}
	assert.Nil(t, fu.updated, "service must not be called")

	rec := do(t, s, http.MethodPut, "/users/1", `{"phone":"555"}`, tok)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUsers_InternalErrorIsGeneric(t *testing.T) {
	s, _ := newUsersServer()

	rec := do(t, s, http.MethodDelete, "/users/1", "", validToken(t))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error."}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

type fakeClients struct {
	ClientService
	created *models.Client
}

func (f *fakeClients) Create(_ context.Context, c *models.Client) (*models.Client, error) {
	f.created = c
	out := *c
	out.ID = 3
	return &out, nil
}

func TestClients_CreateValidation(t *testing.T) {
	fc := &fakeClients{}
	s := newTestServer(Services{Clients: fc})
	tok := validToken(t)

	rec := do(t, s, http.MethodPost, "/clients", `{"school_name":"North"}`, tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/clients", `{"api_key":"k","school_name":"North","subscription_type":"gold"}`, tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid subscription type"}`, rec.Body.String())

	rec = do(t, s, http.MethodPost, "/clients", `{"api_key":"k","school_name":"North","subscription_type":"basic","autorenew":true}`, tok)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.SubscriptionBasic, fc.created.SubscriptionType)
	assert.True(t, fc.created.Autorenew)
}

type fakeAccounts struct{ ClientAccountService }

func (fakeAccounts) Create(context.Context, *models.ClientAccount) (*models.ClientAccount, error) {
	return nil, common.ErrConflict
}

func (fakeAccounts) Get(_ context.Context, clientID, userID int64) (*models.ClientAccount, error) {
	return &models.ClientAccount{ClientID: clientID, UserID: userID}, nil
}

func TestClientAccounts(t *testing.T) {
	s := newTestServer(Services{ClientAccounts: fakeAccounts{}})
	tok := validToken(t)

	rec := do(t, s, http.MethodPost, "/client-accounts", `{"client_id":1,"user_id":99}`, tok)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, s, http.MethodGet, "/client-accounts/1/x", "", tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid client ID or user ID"}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/client-accounts/1/2", "", tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"client_id":1,"user_id":2}`, rec.Body.String())
}

type fakeClasses struct{ ClassService }

func (fakeClasses) Members(_ context.Context, id int64) ([]*models.ClassMember, error) {
	if id != 1 {
		return nil, common.ErrorNotFound
	}
	return []*models.ClassMember{{UserID: 2, Email: "t@x.com", Role: models.RoleTeacher}}, nil
}

func (fakeClasses) Environments(context.Context, int64) ([]*models.Environment, error) {
	return []*models.Environment{}, nil
}

func TestClasses_SubResources(t *testing.T) {
	s := newTestServer(Services{Classes: fakeClasses{}})
	tok := validToken(t)

	rec := do(t, s, http.MethodGet, "/classes/1/users", "", tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"teacher"`)

	rec = do(t, s, http.MethodGet, "/classes/5/users", "", tok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Class not found"}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/classes/1/environments", "", tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

type fakeClassUsers struct {
	ClassUserService
	role models.Role
}

func (f *fakeClassUsers) UpdateRole(_ context.Context, classID, userID int64, role models.Role) (*models.ClassUser, error) {
	f.role = role
	return &models.ClassUser{ClassID: classID, UserID: userID, Role: role}, nil
}

func TestClassUsers_UpdateRole(t *testing.T) {
	fcu := &fakeClassUsers{}
	s := newTestServer(Services{ClassUsers: fcu})
	tok := validToken(t)

	rec := do(t, s, http.MethodPut, "/class-users/1/2", `{}`, tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPut, "/class-users/1/2", `{"role":"principal"}`, tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPut, "/class-users/1/2", `{"role":"admin"}`, tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleAdmin, fcu.role)
}

type fakeEnvironments struct {
	EnvironmentService
	created *models.Environment
}

func (f *fakeEnvironments) Create(_ context.Context, e *models.Environment) (*models.Environment, error) {
	f.created = e
	return e, nil
}

func TestEnvironments_Create(t *testing.T) {
	fe := &fakeEnvironments{}
	s := newTestServer(Services{Environments: fe})
	tok := validToken(t)

	rec := do(t, s, http.MethodPost, "/environments", `{"class_id":1,"environment_name":"Lab","environment_description":"d","settings":[1,2]}`, tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/environments", `{"class_id":1,"environment_name":"Lab","environment_description":"d","settings":{"model":"small"}}`, tok)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, fe.created.ActiveStatus)
	assert.JSONEq(t, `{"model":"small"}`, string(fe.created.Settings))
}

type fakeHistory struct {
	EnvironmentHistoryService
	created *models.HistoryEntry
}

func (f *fakeHistory) Conversation(context.Context, int64, int64) ([]*models.HistoryEntry, error) {
	return nil, common.ErrorNotFound
}

func (f *fakeHistory) Create(_ context.Context, h *models.HistoryEntry) (*models.HistoryEntry, error) {
	f.created = h
	return h, nil
}

func TestEnvironmentHistory(t *testing.T) {
	fh := &fakeHistory{}
	s := newTestServer(Services{EnvironmentHistory: fh})
	tok := validToken(t)

	rec := do(t, s, http.MethodGet, "/environment-history/3/4", "", tok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Environment history not found"}`, rec.Body.String())

	rec = do(t, s, http.MethodPost, "/environment-history", `{"environment_id":3,"user_id":4,"message":"hi","message_type":"shout"}`, tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/environment-history", `{"environment_id":3,"user_id":4,"message":"hi","message_type":"query","timestamp":"2025-01-01T10:00:00Z"}`, tok)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, fh.created.Timestamp.Equal(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)))
}
