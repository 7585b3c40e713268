package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shopspark/internal/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims binds a signed-in identity to its session.
type Claims struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// Manager issues and validates HS256 session tokens handed out on sign-in.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// Issue signs a token for the user bound to sessionID.
func (m *Manager) Issue(sessionID string, user domain.User) (string, error) {
	claims := &Claims{
		Name:      user.Name,
		Email:     user.Email,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses and verifies a token, returning its claims.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
