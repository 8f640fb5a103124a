package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "session_token"
	Issuer     = "essaydraft-api"
	Audience   = "essaydraft-web"
)

// SessionClaims are the claims carried by a session token. The subject is
// the user id.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Sessions issues signed session tokens and the cookies that carry them.
type Sessions struct {
	secret       []byte
	ttl          time.Duration
	cookieDomain string
	cookieSecure bool
}

func NewSessions(secret string, ttl time.Duration, cookieDomain string, cookieSecure bool) (*Sessions, error) {
	if secret == "" {
		return nil, errors.New("auth: session secret not set")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Sessions{
		secret:       []byte(secret),
		ttl:          ttl,
		cookieDomain: cookieDomain,
		cookieSecure: cookieSecure,
	}, nil
}

// Secret is the HS256 key shared with the validating middleware.
func (s *Sessions) Secret() []byte {
	return s.secret
}

func (s *Sessions) CreateToken(userID, email, name string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    Issuer,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Email: email,
		Name:  name,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *Sessions) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Domain:   s.cookieDomain,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})
}

// ClearCookie asks the client to discard the session. There is no server
// side revocation.
func (s *Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Domain:   s.cookieDomain,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
