package middleware

import (
	"net/http"

	"github.com/andrewpaige1/essaydraft-api/utils"
)

// RequireSession rejects requests whose validated token carries no user id.
// It runs after EnsureValidToken.
func RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserID(r); !ok {
			ErrorResponse(w, http.StatusUnauthorized, "User not authenticated")
			return
		}
		next.ServeHTTP(w, r)
	}
}
