package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/comitanigiacomo/kanso-vitals/internal/core/domain"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenService struct {
	secretKey     []byte
	issuer        string
	tokenDuration time.Duration
	userRepo      domain.UserRepository
}

func NewTokenService(secretKey string, issuer string, tokenDuration time.Duration, userRepo domain.UserRepository) *TokenService {
	return &TokenService{
		secretKey:     []byte(secretKey),
		issuer:        issuer,
		tokenDuration: tokenDuration,
		userRepo:      userRepo,
	}
}

func (s *TokenService) GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("token service: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken checks signature, issuer and expiry, then makes sure the user still exists.
func (s *TokenService) ValidateToken(tokenString string) (*domain.User, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("user no longer exists or db error: %w", err)
	}

	return user, nil
}
