package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Shutko92/TaskManagerApp/internal/core/ports"
)

var errUnexpectedSigningMethod = errors.New("unexpected token signing method")

// TokenService issues HS256-signed bearer tokens carrying the username
// as subject and an expiry a fixed TTL from issuance. Tokens are fully
// self-contained; nothing is persisted.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

var _ ports.TokenService = (*TokenService)(nil)

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ExtractUsername verifies the signature and expiry and returns the
// embedded subject. Any failure means "no identity" to the caller.
func (s *TokenService) ExtractUsername(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

func (s *TokenService) ValidateToken(token, username string) bool {
	subject, err := s.ExtractUsername(token)
	if err != nil {
		return false
	}
	return subject == username
}
