package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/andrewpaige1/essaydraft-api/auth"
)

// EnsureValidToken builds the middleware that validates session tokens
// signed with secret. A request without a valid token never reaches next.
func EnsureValidToken(secret []byte) (func(http.Handler) http.Handler, error) {
	keyFunc := func(ctx context.Context) (interface{}, error) {
		return secret, nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		auth.Issuer,
		[]string{auth.Audience},
		validator.WithCustomClaims(
			func() validator.CustomClaims {
				return &auth.CustomClaims{}
			},
		),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, err
	}

	mw := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithTokenExtractor(SessionTokenExtractor),
		jwtmiddleware.WithErrorHandler(tokenErrorHandler),
	)

	return mw.CheckJWT, nil
}

// SessionTokenExtractor reads the session cookie and falls back to an
// Authorization bearer header.
func SessionTokenExtractor(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	return jwtmiddleware.AuthHeaderTokenExtractor(r)
}

func tokenErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, jwtmiddleware.ErrJWTMissing) {
		slog.Warn("rejected session token", "path", r.URL.Path, "error", err)
	}
	ErrorResponse(w, http.StatusUnauthorized, "User not authenticated")
}
