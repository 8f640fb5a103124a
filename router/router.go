package router

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/andrewpaige1/essaydraft-api/handlers"
	"github.com/andrewpaige1/essaydraft-api/middleware"
)

// NewRouter builds the route table. authMiddleware validates session tokens
// and is applied only to routes that need a session, so a stale cookie never
// blocks register or login.
func NewRouter(h *handlers.APIHandler, authMiddleware func(http.Handler) http.Handler, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	protected := func(next http.HandlerFunc) http.Handler {
		return authMiddleware(middleware.RequireSession(next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /api/register", h.Register)
	mux.HandleFunc("POST /api/userExists", h.UserExists)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.Handle("GET /api/auth/session", protected(h.Session))

	// Profile
	mux.Handle("GET /api/userProfile", protected(h.GetProfile))
	mux.Handle("PUT /api/userProfile", protected(h.UpdateProfile))
	mux.Handle("POST /api/tell_us_about_you", protected(h.TellUsAboutYou))

	// Colleges
	mux.Handle("GET /api/colleges", protected(h.GetColleges))
	mux.Handle("POST /api/colleges", protected(h.AddCollege))
	mux.Handle("DELETE /api/colleges", protected(h.DeleteCollege))

	// Questions
	mux.Handle("GET /api/college/{id}", protected(h.GetCollege))
	mux.Handle("POST /api/college/{id}", protected(h.AddQuestion))
	mux.Handle("PUT /api/college/{id}", protected(h.UpdateAnswer))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	})

	return middleware.WithLogging(corsHandler.Handler(mux))
}
