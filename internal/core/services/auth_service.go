package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

type AuthService struct {
	repo domain.UserRepository
}

func NewAuthService(repo domain.UserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Locale   string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	user, err := domain.NewUser(uuid.NewString(), input.Email)
	if err != nil {
		return nil, err
	}

	if input.Locale != "" {
		if err := user.SetLocale(input.Locale); err != nil {
			return nil, err
		}
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate returns ErrInvalidCredentials for both unknown emails and wrong passwords.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: lookup failed: %w", err)
	}

	if err := user.CheckPassword(password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
