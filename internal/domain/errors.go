package domain

import (
	"errors"
	"fmt"
)

// Erros base de cada etapa do relatório
var (
	ErrConnection = errors.New("database connection error")
	ErrQuery      = errors.New("query error")
	ErrRender     = errors.New("chart render error")
	ErrExport     = errors.New("export error")
)

// Etapas do pipeline
const (
	StageConnect = "connect"
	StageQuery   = "query"
	StageRender  = "render"
	StageExport  = "export"
)

// ReportError é um erro com contexto da etapa em que ocorreu
type ReportError struct {
	Err     error  // Erro base (ErrConnection, ErrQuery, ...)
	Stage   string // Etapa do pipeline
	Target  string // Consulta, gráfico ou arquivo envolvido
	Details error  // Erro original
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	msg := e.Err.Error()
	if e.Target != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Target)
	}
	if e.Details != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Details.Error())
	}
	return msg
}

// Unwrap permite errors.Is tanto no erro base quanto no erro original
func (e *ReportError) Unwrap() []error {
	if e.Details == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Details}
}

func NewConnectionError(details error) *ReportError {
	return &ReportError{Err: ErrConnection, Stage: StageConnect, Details: details}
}

func NewQueryError(query string, details error) *ReportError {
	return &ReportError{Err: ErrQuery, Stage: StageQuery, Target: query, Details: details}
}

func NewRenderError(chart string, details error) *ReportError {
	return &ReportError{Err: ErrRender, Stage: StageRender, Target: chart, Details: details}
}

func NewExportError(file string, details error) *ReportError {
	return &ReportError{Err: ErrExport, Stage: StageExport, Target: file, Details: details}
}
