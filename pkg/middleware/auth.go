package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// AuthMiddleware exige um token Bearer válido e grava as claims no contexto.
// É aplicado por rota, então rotas inexistentes respondem 404 antes da autenticação.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					code = authErr.Code
				}
				apiErrors.WriteError(w, code, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext retorna as claims gravadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
