package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eduhub/eduhub/internal/logging"
	"github.com/eduhub/eduhub/internal/server/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

var testIdentity = auth.Identity{UserID: 7, Email: "a@x.com", FirstName: "A", LastName: "B"}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(svc Services) *Server {
	return NewServer("127.0.0.1:0", logging.Nop{}, testSecret, svc)
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := auth.GenerateToken(testIdentity, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return tok
}

// do sends a request; a non-empty token is sent as a bearer credential.
func do(t *testing.T, s *Server, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}
