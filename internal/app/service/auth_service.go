package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Shutko92/TaskManagerApp/internal/core/domain"
	"github.com/Shutko92/TaskManagerApp/internal/core/ports"
)

const registrationConfirmation = "User registered successfully"

type AuthService struct {
	userRepository ports.UserRepository
	tokenService   ports.TokenService
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(userRepository ports.UserRepository, tokenService ports.TokenService) *AuthService {
	return &AuthService{userRepository: userRepository, tokenService: tokenService}
}

// Register hashes the password with bcrypt and persists a new USER-role
// account. Username uniqueness is enforced by the store's unique index
// and surfaces as domain.ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	_, err = s.userRepository.CreateUser(ctx, domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Role:         domain.RoleUser,
	})
	if err != nil {
		return "", err
	}

	return registrationConfirmation, nil
}

// Login verifies the credentials and mints a token. A failed login is
// always domain.ErrInvalidCredentials, whether the user is missing or
// the password is wrong; a missing account is not distinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokenService.GenerateToken(user.Username)
}
