package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidCredentials covers every token failure: bad signature, expired,
// or a payload missing the id/username claims.
var ErrInvalidCredentials = errors.New("could not validate user credentials")

// Claims is the decoded token payload. Username travels in the standard
// subject claim. Lifetime is one request.
type Claims struct {
	UserID uint   `json:"id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// Username returns the subject claim.
func (c *Claims) Username() string {
	return c.Subject
}

// TokenManager issues and verifies HS256-signed access tokens. There is no
// refresh or revocation mechanism; a token is valid until expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Create builds a signed token embedding the user's id, username and role,
// expiring after the manager's TTL.
func (m *TokenManager) Create(userID uint, username, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			Subject:   username,
			ExpiresAt: time.Now().Add(m.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Decode verifies the token's signature and expiry and returns its claims.
// Tokens signed with another secret, expired, or missing id/username fail
// with ErrInvalidCredentials.
func (m *TokenManager) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredentials
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	if claims.UserID == 0 || claims.Subject == "" {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}
