package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/vfg2006/sales-report/pkg/apiErrors"
	"github.com/vfg2006/sales-report/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra cada requisição com o correlation_id gerado para ela
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			fields := log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
			}
			if !log.IsDevelopment() {
				fields["correlation_id"] = correlationID
				fields["remote_addr"] = r.RemoteAddr
				fields["duration_ms"] = elapsed.Milliseconds()
			}
			logger := log.L.WithFields(fields)

			msg := fmt.Sprintf("Requisição finalizada em %s", formatDuration(elapsed))
			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s %s", r.Method, r.URL.Path)
			}
		})
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter guarda o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware transforma panics dos handlers em respostas 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)

					log.L.WithFields(log.Fields{
						"correlation_id": log.GetCorrelationID(r.Context()),
						"panic_error":    err,
						"method":         r.Method,
						"path":           r.URL.Path,
						"stack_trace":    string(stack[:stackSize]),
					}).Error("Erro não tratado na aplicação")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
