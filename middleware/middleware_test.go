package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/essaydraft-api/auth"
	"github.com/andrewpaige1/essaydraft-api/models"
	"github.com/andrewpaige1/essaydraft-api/utils"
)

func whoAmI(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetSessionUser(r)
	if !ok {
		ErrorResponse(w, http.StatusTeapot, "no session")
		return
	}
	JSONResponse(w, http.StatusOK, user)
}

func TestEnsureValidToken(t *testing.T) {
	sessions, err := auth.NewSessions("test-secret", time.Hour, "", false)
	require.NoError(t, err)
	token, err := sessions.CreateToken("u1", "ada@example.com", "Ada")
	require.NoError(t, err)

	other, err := auth.NewSessions("other-secret", time.Hour, "", false)
	require.NoError(t, err)
	foreign, err := other.CreateToken("u1", "ada@example.com", "Ada")
	require.NoError(t, err)

	signed := func(claims auth.SessionClaims) string {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sessions.Secret())
		require.NoError(t, err)
		return tok
	}
	registered := func(issuer string, expires time.Time) jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Subject:   "u1",
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{auth.Audience},
			IssuedAt:  jwt.NewNumericDate(expires.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(expires),
		}
	}
	expired := signed(auth.SessionClaims{
		RegisteredClaims: registered(auth.Issuer, time.Now().Add(-2*time.Hour)),
		Email:            "ada@example.com",
	})
	wrongIssuer := signed(auth.SessionClaims{
		RegisteredClaims: registered("someone-else", time.Now().Add(time.Hour)),
		Email:            "ada@example.com",
	})
	noEmail := signed(auth.SessionClaims{
		RegisteredClaims: registered(auth.Issuer, time.Now().Add(time.Hour)),
	})

	validate, err := EnsureValidToken(sessions.Secret())
	require.NoError(t, err)
	handler := validate(RequireSession(whoAmI))

	tests := []struct {
		name       string
		prepare    func(r *http.Request)
		wantStatus int
	}{
		{
			name:       "cookie",
			prepare:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token}) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "bearer header",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing",
			prepare:    func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage cookie",
			prepare:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "nope"}) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			prepare:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: expired}) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong issuer",
			prepare:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: wrongIssuer}) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing email claim",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+noEmail) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			prepare:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: foreign}) },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusOK {
				var user models.SessionUser
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
				assert.Equal(t, models.SessionUser{ID: "u1", Email: "ada@example.com", Name: "Ada"}, user)
				return
			}
			assert.JSONEq(t, `{"error":"User not authenticated"}`, w.Body.String())
		})
	}
}

func TestRequireSession_WithoutClaims(t *testing.T) {
	called := false
	handler := RequireSession(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/colleges", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithLogging(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"Created", http.StatusCreated, `{"id":"123"}`},
		{"NotFound", http.StatusNotFound, "not found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			}))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/test", nil))

			assert.Equal(t, tc.statusCode, w.Code)
			assert.Equal(t, tc.body, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}
}

func TestWithLogging_KeepsIncomingRequestID(t *testing.T) {
	var seen string
	handler := WithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", seen)
}

func TestParseStrictJSONBody(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
	require.NoError(t, ParseStrictJSONBody(req, &v))
	assert.Equal(t, "a", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	assert.Error(t, ParseStrictJSONBody(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	assert.NoError(t, ParseJSONBody(req, &v))
}
