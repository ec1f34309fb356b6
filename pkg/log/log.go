// Package log encapsula o logrus com o correlation_id de cada execução
package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger
	WithStage(stage string) Logger

	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}

type contextKey string

// CorrelationIDKey guarda o correlation_id no contexto
const CorrelationIDKey contextKey = "correlation_id"

const correlationIDField = "correlation_id"

// Campos mantidos em desenvolvimento, os demais só aparecem em produção
var devFields = map[string]bool{
	correlationIDField: true,
	"stage":            true,
	"chart":            true,
	"file":             true,
	"query":            true,
	"rows":             true,
	"duration_ms":      true,
	"error":            true,
	"method":           true,
	"path":             true,
	"status_code":      true,
}

type logger struct {
	*logrus.Entry
}

// L é o logger global
var L Logger = newLogger()

func newLogger() *logger {
	return &logger{logrus.NewEntry(logrus.StandardLogger())}
}

// IsDevelopment é verdadeiro quando APP_ENV está vazio, dev ou development
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "dev", "development":
		return true
	}
	return false
}

// SetupTestLogger deixa o logrus em debug com saída compacta
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{PadLevelText: true})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = newLogger()
}

func keepField(key string) bool {
	return !IsDevelopment() || devFields[key] || strings.HasPrefix(key, "report_")
}

func (l *logger) WithField(key string, value any) Logger {
	if !keepField(key) {
		return l
	}
	return &logger{l.Entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keepField(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{l.Entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{l.Entry.WithError(err)}
}

// WithContext adiciona o correlation_id do contexto, se houver
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return l.WithField(correlationIDField, correlationID)
	}
	return l
}

// WithStage marca as mensagens com a etapa do relatório
func (l *logger) WithStage(stage string) Logger {
	return &logger{l.Entry.WithField("stage", stage)}
}

// WithCorrelationID gera um correlation_id novo e o grava no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	correlationID, _ := ctx.Value(CorrelationIDKey).(string)
	return correlationID
}

// ForContext é o atalho para L.WithContext(ctx)
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
