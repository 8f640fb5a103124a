package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrewpaige1/essaydraft-api/middleware"
	"github.com/andrewpaige1/essaydraft-api/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	srv := testutil.NewServer(t)

	w := srv.Do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouteExistence(t *testing.T) {
	srv := testutil.NewServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/register"},
		{http.MethodPost, "/api/userExists"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodGet, "/api/auth/session"},
		{http.MethodGet, "/api/userProfile"},
		{http.MethodPut, "/api/userProfile"},
		{http.MethodPost, "/api/tell_us_about_you"},
		{http.MethodGet, "/api/colleges"},
		{http.MethodPost, "/api/colleges"},
		{http.MethodDelete, "/api/colleges"},
		{http.MethodGet, "/api/college/abc"},
		{http.MethodPost, "/api/college/abc"},
		{http.MethodPut, "/api/college/abc"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := srv.Do(t, rt.method, rt.path, "", "{}")
			assert.NotEqual(t, http.StatusNotFound, w.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, w.Code)
		})
	}
}

func TestUnknownRoutes(t *testing.T) {
	srv := testutil.NewServer(t)

	w := srv.Do(t, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.Do(t, http.MethodPatch, "/api/colleges", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCORS(t *testing.T) {
	srv := testutil.NewServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/colleges", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodOptions, "/api/colleges", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
