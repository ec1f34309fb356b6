// Package authenticating emite e valida os tokens do servidor de status
package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/apiErrors"
)

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	GenerateToken(subject string, role int, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secretKey string
	now       func() time.Time
}

func NewService(secretKey string) Authenticator {
	return &Service{
		secretKey: secretKey,
		now:       time.Now,
	}
}

// GenerateToken assina um token HS256 para o papel informado.
// ttl zero usa a validade padrão de 24h.
func (s *Service) GenerateToken(subject string, role int, ttl time.Duration) (string, error) {
	if s.secretKey == "" {
		return "", ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		RoleID: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if s.secretKey == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}
	return claims, nil
}
