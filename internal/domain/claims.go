package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis aceitos pelo servidor de status
const (
	RoleAdmin  = 1 // pode disparar gerações
	RoleViewer = 2 // apenas consulta status e manifesto
)

// Claims é o conteúdo dos tokens do servidor de status
type Claims struct {
	RoleID int `json:"role_id"`
	jwt.RegisteredClaims
}
