package utils

import (
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/andrewpaige1/essaydraft-api/auth"
	"github.com/andrewpaige1/essaydraft-api/models"
)

func GetUserID(r *http.Request) (string, bool) {
	claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
	if !ok || claims.RegisteredClaims.Subject == "" {
		return "", false
	}
	return claims.RegisteredClaims.Subject, true
}

// GetSessionUser returns the identity the session token was issued for.
func GetSessionUser(r *http.Request) (models.SessionUser, bool) {
	claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
	if !ok || claims.RegisteredClaims.Subject == "" {
		return models.SessionUser{}, false
	}

	user := models.SessionUser{ID: claims.RegisteredClaims.Subject}
	if custom, ok := claims.CustomClaims.(*auth.CustomClaims); ok && custom != nil {
		user.Email = custom.Email
		user.Name = custom.Name
	}
	return user, true
}
