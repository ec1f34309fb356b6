package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/apiErrors"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos roles
// allowedRoles é um array de IDs de roles que têm permissão para acessar a rota
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, userClaims.RoleID) {
				logrus.Warningf("Acesso negado para %s, Role=%d", userClaims.Subject, userClaims.RoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin, domain.RoleViewer})
}
