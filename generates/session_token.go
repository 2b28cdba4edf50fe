package generates

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultSessionTTL is the fixed validity window for session tokens.
const DefaultSessionTTL = 24 * time.Hour

// ErrInvalidSessionToken is returned by Parse for any token that does not
// verify, including expired ones.
var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims binds a session token to a user id and username.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// SessionTokenGenerate mints and verifies HS256 session tokens.
type SessionTokenGenerate struct {
	SignedKey []byte
	TTL       time.Duration
}

// NewSessionTokenGenerate creates a generator with the given signing key.
// A zero ttl falls back to DefaultSessionTTL.
func NewSessionTokenGenerate(key []byte, ttl time.Duration) *SessionTokenGenerate {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionTokenGenerate{SignedKey: key, TTL: ttl}
}

// Token issues a signed token for the user.
func (g *SessionTokenGenerate) Token(userID int64, username string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.TTL)),
		},
		UserID:   userID,
		Username: username,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.SignedKey)
}

// Parse verifies the signature and expiry and returns the claims.
func (g *SessionTokenGenerate) Parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return g.SignedKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSessionToken
	}
	return claims, nil
}
