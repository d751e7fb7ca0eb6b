package ports

import "context"

type AuthService interface {
	Register(ctx context.Context, username, password, email string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenService issues and verifies self-contained bearer tokens. A token
// is valid for a user when the signature verifies, the token is unexpired
// and the embedded subject matches the user's username.
type TokenService interface {
	GenerateToken(username string) (string, error)
	ExtractUsername(token string) (string, error)
	ValidateToken(token, username string) bool
}
