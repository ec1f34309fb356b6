package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sales-report/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest   = "VAL_001" // Requisição inválida
	ErrNotFound         = "VAL_004" // Recurso não encontrado
	ErrMethodNotAllowed = "VAL_005" // Método não permitido

	// Erros do relatório (3000-3999)
	ErrReportRunning    = "REP_001" // Geração já em andamento
	ErrReportConnection = "REP_002" // Falha de conexão com o banco
	ErrReportQuery      = "REP_003" // Falha em consulta
	ErrReportRender     = "REP_004" // Falha ao gerar gráfico
	ErrReportExport     = "REP_005" // Falha ao exportar arquivo

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrReportRunning:         http.StatusConflict,
	ErrReportConnection:      http.StatusBadGateway,
	ErrReportQuery:           http.StatusInternalServerError,
	ErrReportRender:          http.StatusInternalServerError,
	ErrReportExport:          http.StatusInternalServerError,
	ErrInternalServer:        http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusCode retorna o status HTTP do código, 500 para códigos desconhecidos
func StatusCode(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusCode(code))
	json.NewEncoder(w).Encode(apiErr)
}

// CodeFor mapeia os erros do relatório para os códigos da API
func CodeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrConnection):
		return ErrReportConnection
	case errors.Is(err, domain.ErrQuery):
		return ErrReportQuery
	case errors.Is(err, domain.ErrRender):
		return ErrReportRender
	case errors.Is(err, domain.ErrExport):
		return ErrReportExport
	default:
		return ErrInternalServer
	}
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    CodeFor(err),
		Message: err.Error(),
	}
}
