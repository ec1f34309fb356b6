// Package generating executa o pipeline completo do relatório: carga, métricas,
// relatório no console, gráficos e exportação
package generating

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/usecases/analyzing"
	"github.com/vfg2006/sales-report/internal/usecases/exporting"
	"github.com/vfg2006/sales-report/pkg/log"
	"github.com/vfg2006/sales-report/pkg/utils"
)

const totalSteps = 5

type Analyzer interface {
	Run(ctx context.Context) (*analyzing.Analysis, error)
	OnProgress(progress analyzing.ProgressFunc)
}

type Reporter interface {
	Write(analysis *analyzing.Analysis) error
}

type ChartRenderer interface {
	RenderEach(ctx context.Context, analysis *analyzing.Analysis, onSaved func(path string)) ([]string, error)
	Dir() string
}

type Exporter interface {
	Export(ctx context.Context, run exporting.Run, analysis *analyzing.Analysis, charts []string) ([]string, error)
}

// Result resume uma execução bem-sucedida
type Result struct {
	RunID         string
	CorrelationID string
	StartedAt     time.Time
	FinishedAt    time.Time
	Charts        []string
	Files         []string
	Analysis      *analyzing.Analysis
}

type Service struct {
	analyzer Analyzer
	reporter Reporter
	renderer ChartRenderer
	exporter Exporter
	out      io.Writer
	now      func() time.Time
}

func NewService(analyzer Analyzer, reporter Reporter, renderer ChartRenderer, exporter Exporter, out io.Writer) *Service {
	return &Service{
		analyzer: analyzer,
		reporter: reporter,
		renderer: renderer,
		exporter: exporter,
		out:      out,
		now:      time.Now,
	}
}

// Generate executa as etapas em sequência. Qualquer erro interrompe o restante
// do pipeline e é devolvido sem tratamento local.
func (s *Service) Generate(ctx context.Context) (*Result, error) {
	ctx, correlationID := log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	result := &Result{
		RunID:         runID,
		CorrelationID: correlationID,
		StartedAt:     s.now(),
	}
	logger = logger.WithField("report_run_id", runID)
	logger.Info("Iniciando geração do relatório")

	s.println("RELATÓRIO DE VENDAS - GERAÇÃO DE GRÁFICOS")
	s.println(strings.Repeat("=", 50))
	s.println()

	s.step(1, "Conectando ao banco de dados...")
	s.analyzer.OnProgress(func(stage string) {
		switch stage {
		case domain.StageConnect:
			s.println("   Conexão estabelecida.")
			s.println()
			s.step(2, "Executando consultas SQL...")
		case domain.StageQuery:
			s.println("   Consultas concluídas.")
			s.println()
		}
	})

	analysis, err := s.analyzer.Run(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar dados do relatório")
		return nil, err
	}
	result.Analysis = analysis

	s.step(3, "Relatório de métricas...")
	s.println()
	if err := s.reporter.Write(analysis); err != nil {
		return nil, err
	}

	s.step(4, "Criando gráficos...")
	s.println()
	charts, err := s.renderer.RenderEach(ctx, analysis, func(path string) {
		s.printf("   %s\n", filepath.Base(path))
	})
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar gráficos")
		return nil, err
	}
	result.Charts = charts
	s.println()
	s.printf("Gráficos salvos em: %s\n", s.renderer.Dir())
	s.println()

	s.step(5, "Exportando tabelas...")
	files, err := s.exporter.Export(ctx, exporting.Run{
		ID:            runID,
		CorrelationID: correlationID,
		GeneratedAt:   result.StartedAt,
	}, analysis, charts)
	if err != nil {
		logger.WithError(err).Error("Erro ao exportar tabelas")
		return nil, err
	}
	result.Files = files

	s.println("Arquivos exportados:")
	for _, file := range files {
		s.printf("   - %s\n", filepath.Base(file))
	}
	s.println()

	s.println(strings.Repeat("=", 50))
	s.println("CONCLUÍDO")
	s.println()

	result.FinishedAt = s.now()
	logger.WithField("duration_ms", result.FinishedAt.Sub(result.StartedAt).Milliseconds()).Info("Relatório gerado com sucesso")

	return result, nil
}

func (s *Service) step(n int, message string) {
	s.printf("[%d/%d] %s\n", n, totalSteps, message)
}

func (s *Service) println(args ...interface{}) {
	fmt.Fprintln(s.out, args...)
}

func (s *Service) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
