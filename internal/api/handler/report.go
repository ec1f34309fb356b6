package handler

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sales-report/internal/usecases/exporting"
	"github.com/vfg2006/sales-report/pkg/apiErrors"
	"github.com/vfg2006/sales-report/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportScheduler é o que os handlers precisam do agendador do relatório
type ReportScheduler interface {
	GetStatus() map[string]any
	TriggerManualSync(ctx context.Context) bool
}

// GetReportStatus retorna o status do agendador
func GetReportStatus(scheduler ReportScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, scheduler.GetStatus())
	}
}

// RunReport dispara uma geração manual em segundo plano
func RunReport(scheduler ReportScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// A geração continua depois que a resposta é enviada
		if !scheduler.TriggerManualSync(context.WithoutCancel(r.Context())) {
			apiErrors.WriteError(w, apiErrors.ErrReportRunning, "Geração do relatório já em andamento", nil)
			return
		}

		logger.Info("Geração manual solicitada via API")
		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Geração do relatório iniciada",
		})
	}
}

// GetManifest devolve o manifest.json da última geração concluída
func GetManifest(outputDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := os.ReadFile(filepath.Join(outputDir, exporting.ManifestFile))
		if errors.Is(err, fs.ErrNotExist) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum relatório gerado ainda", nil)
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao ler manifesto")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler manifesto", nil)
			return
		}

		manifest, err := exporting.DecodeManifest(data)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Manifesto inválido")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Manifesto inválido", nil)
			return
		}

		writeJSON(w, http.StatusOK, manifest)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("Erro ao escrever resposta")
	}
}
