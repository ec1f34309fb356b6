package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report/pkg/apiErrors"
	"github.com/vfg2006/sales-report/pkg/log"
)

type fakeAuthenticator struct {
	claims *domain.Claims
	err    error
}

func (f fakeAuthenticator) GenerateToken(string, int, time.Duration) (string, error) {
	return "token", nil
}

func (f fakeAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr.Code
}

func viewerClaims() *domain.Claims {
	return &domain.Claims{
		RoleID:           domain.RoleViewer,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "viewer"},
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		header   string
		auth     fakeAuthenticator
		wantCode int
		wantErr  string
	}{
		{
			name:     "Sem cabeçalho",
			path:     "/v1/report/status",
			wantCode: http.StatusUnauthorized,
			wantErr:  apiErrors.ErrInvalidToken,
		},
		{
			name:     "Token expirado",
			path:     "/v1/report/status",
			header:   "Bearer abc",
			auth:     fakeAuthenticator{err: authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")},
			wantCode: http.StatusUnauthorized,
			wantErr:  apiErrors.ErrExpiredToken,
		},
		{
			name:     "Token válido",
			path:     "/v1/report/status",
			header:   "Bearer abc",
			auth:     fakeAuthenticator{claims: viewerClaims()},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.auth)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorCode(t, rec))
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	protected := AuthMiddleware(fakeAuthenticator{claims: viewerClaims()})

	t.Run("Viewer acessa AllRoles", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/report/status", nil)
		req.Header.Set("Authorization", "Bearer abc")
		rec := httptest.NewRecorder()

		protected(AllRoles()(okHandler())).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Viewer bloqueado em AdminOnly", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/report/run", nil)
		req.Header.Set("Authorization", "Bearer abc")
		rec := httptest.NewRecorder()

		protected(AdminOnly()(okHandler())).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, errorCode(t, rec))
	})

	t.Run("Sem claims no contexto", func(t *testing.T) {
		rec := httptest.NewRecorder()

		AdminOnly()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/report/run", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/report/status", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/report/status", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("falhou")
	})
	rec := httptest.NewRecorder()

	LogPanicMiddleware()(LoggingMiddleware()(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, errorCode(t, rec))
}

func TestLoggingMiddleware_StatusCode(t *testing.T) {
	log.SetupTestLogger()
	teapot := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rec := httptest.NewRecorder()

	LoggingMiddleware()(teapot).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500*time.Microsecond))
	assert.Equal(t, "12 ms", formatDuration(12*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}
