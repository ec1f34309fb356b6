// Package exporting grava as tabelas do relatório em disco: os três CSVs e,
// opcionalmente, planilha, resumo em PDF e o manifesto da execução
package exporting

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/usecases/analyzing"
	"github.com/vfg2006/sales-report/pkg/log"
)

type Options struct {
	XLSXEnabled bool
	PDFEnabled  bool
}

// Run identifica a execução no manifesto
type Run struct {
	ID            string
	CorrelationID string
	GeneratedAt   time.Time
}

type Exporter struct {
	dir     string
	options Options
}

func NewExporter(dir string, options Options) *Exporter {
	return &Exporter{
		dir:     dir,
		options: options,
	}
}

// Export grava os arquivos na ordem: CSVs, planilha, PDF e manifesto.
// Retorna os caminhos gravados; a primeira falha interrompe a exportação.
func (e *Exporter) Export(ctx context.Context, run Run, analysis *analyzing.Analysis, charts []string) ([]string, error) {
	logger := log.ForContext(ctx).WithStage(domain.StageExport)

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, domain.NewExportError(e.dir, err)
	}

	dataset := analysis.Dataset
	tables := []struct {
		file string
		rows [][]string
	}{
		{MarketsCSV, marketRows(dataset.Markets)},
		{CustomersCSV, customerRows(dataset.Customers)},
		{YearlyCSV, yearlyRows(dataset.Yearly)},
	}

	var paths []string
	for _, table := range tables {
		path, err := writeCSVFile(e.dir, table.file, table.rows)
		if err != nil {
			logger.WithField("file", table.file).WithError(err).Error("Erro ao exportar CSV")
			return paths, err
		}
		logger.WithFields(log.Fields{"file": table.file, "rows": len(table.rows) - 1}).Debug("CSV exportado")
		paths = append(paths, path)
	}

	if e.options.XLSXEnabled {
		data, err := BuildWorkbook(analysis)
		if err != nil {
			return paths, domain.NewExportError(WorkbookFile, err)
		}
		path, err := e.writeFile(WorkbookFile, data)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	if e.options.PDFEnabled {
		data, err := BuildSummaryPDF(analysis, charts, run.GeneratedAt)
		if err != nil {
			return paths, domain.NewExportError(SummaryPDFFile, err)
		}
		path, err := e.writeFile(SummaryPDFFile, data)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	manifest := &Manifest{
		RunID:         run.ID,
		CorrelationID: run.CorrelationID,
		GeneratedAt:   run.GeneratedAt,
		Charts:        e.relative(charts),
		Files:         e.relative(paths),
	}
	data, err := manifest.Encode()
	if err != nil {
		return paths, domain.NewExportError(ManifestFile, err)
	}
	path, err := e.writeFile(ManifestFile, data)
	if err != nil {
		return paths, err
	}
	paths = append(paths, path)

	logger.WithField("files", len(paths)).Info("Exportação concluída")

	return paths, nil
}

func (e *Exporter) writeFile(name string, data []byte) (string, error) {
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", domain.NewExportError(name, err)
	}
	return path, nil
}

// relative devolve os caminhos relativos ao diretório de saída quando possível
func (e *Exporter) relative(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if rel, err := filepath.Rel(e.dir, p); err == nil {
			out = append(out, filepath.ToSlash(rel))
			continue
		}
		out = append(out, p)
	}
	return out
}
