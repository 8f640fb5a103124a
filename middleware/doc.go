/*
Package middleware holds the HTTP middleware and JSON helpers shared by the
handlers.

Protected routes are wrapped twice:

	validate, _ := middleware.EnsureValidToken(sessions.Secret())
	mux.Handle("GET /api/colleges", validate(middleware.RequireSession(h.GetColleges)))

EnsureValidToken accepts the session_token cookie or an Authorization bearer
header. Rejections are written as {"error": "User not authenticated"}.

WithLogging wraps the whole mux and tags every request with an X-Request-ID.
*/
package middleware
