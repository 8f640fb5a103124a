package auth

import (
	"context"
	"errors"
)

// CustomClaims is the non-registered part of a session token as seen by the
// validating middleware.
type CustomClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (c *CustomClaims) Validate(ctx context.Context) error {
	if c.Email == "" {
		return errors.New("session token has no email")
	}
	return nil
}
