package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/essaydraft-api/auth"
	"github.com/andrewpaige1/essaydraft-api/handlers"
	"github.com/andrewpaige1/essaydraft-api/middleware"
	"github.com/andrewpaige1/essaydraft-api/router"
	"github.com/andrewpaige1/essaydraft-api/store/sqlstore"
)

const TestSecret = "test-secret"

// SetupTestStore opens a private in-memory SQLite store for the test.
func SetupTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)

	s, err := sqlstore.OpenSQLite(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func GetTestSessions(t *testing.T) *auth.Sessions {
	t.Helper()
	sessions, err := auth.NewSessions(TestSecret, time.Hour, "", false)
	require.NoError(t, err)
	return sessions
}

// Server is the full router over a fresh store.
type Server struct {
	Handler  http.Handler
	Store    *sqlstore.Store
	Sessions *auth.Sessions
}

func NewServer(t *testing.T) *Server {
	t.Helper()

	s := SetupTestStore(t)
	sessions := GetTestSessions(t)
	authMiddleware, err := middleware.EnsureValidToken(sessions.Secret())
	require.NoError(t, err)

	h := handlers.NewAPIHandler(s, sessions)
	return &Server{
		Handler:  router.NewRouter(h, authMiddleware, []string{"http://localhost:3000"}),
		Store:    s,
		Sessions: sessions,
	}
}

// Do sends body (marshalled unless it is already a string) and attaches the
// session cookie when token is non-empty.
func (s *Server) Do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}

	w := httptest.NewRecorder()
	s.Handler.ServeHTTP(w, req)
	return w
}

// Register creates an account through the API and returns a session token
// for it.
func (s *Server) Register(t *testing.T, email string) string {
	t.Helper()

	w := s.Do(t, http.MethodPost, "/api/register", "", map[string]string{
		"fname": "Ada", "lname": "Lovelace", "email": email, "password": "correct horse",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.Do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "correct horse",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c.Value
		}
	}
	t.Fatal("login did not set a session cookie")
	return ""
}

// DecodeJSON unmarshals a recorded response body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
