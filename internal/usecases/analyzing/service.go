// Package analyzing carrega as tabelas do relatório e calcula as métricas derivadas
package analyzing

import (
	"context"
	"io"
	"time"

	"github.com/vfg2006/sales-report/infrastructure/repository"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/log"
)

const (
	ReportTopMarkets          = 5
	ReportTopCustomers        = 5
	ConcentrationTopMarkets   = 3
	ConcentrationTopCustomers = 5
)

// ConnectFunc abre a sessão com o banco e devolve o repositório ligado a ela.
// O io.Closer encerra a sessão.
type ConnectFunc func(ctx context.Context) (repository.SalesAnalyticsRepository, io.Closer, error)

type Options struct {
	ChartTopMarkets   int
	ChartTopCustomers int
	OutlierQuantile   float64
}

func DefaultOptions() Options {
	return Options{
		ChartTopMarkets:   7,
		ChartTopCustomers: 5,
		OutlierQuantile:   0.99,
	}
}

// Analysis é o conjunto de tabelas com as métricas derivadas usadas pelas saídas
type Analysis struct {
	Dataset *domain.Dataset

	ReportMarkets   []domain.MarketSummary
	ReportCustomers []domain.CustomerSummary
	ChartMarkets    []domain.MarketSummary
	ChartCustomers  []domain.CustomerSummary

	MarketConcentration   float64
	CustomerConcentration float64

	BoxplotAmounts   []domain.TransactionAmount
	OutlierThreshold float64
}

// ProgressFunc é chamada ao fim de cada etapa da carga (conexão e consultas)
type ProgressFunc func(stage string)

type Service struct {
	connect  ConnectFunc
	options  Options
	progress ProgressFunc
}

func NewService(connect ConnectFunc, options Options) *Service {
	return &Service{
		connect: connect,
		options: options,
	}
}

// OnProgress registra o callback de progresso usado pelo console
func (s *Service) OnProgress(progress ProgressFunc) {
	s.progress = progress
}

func (s *Service) notify(stage string) {
	if s.progress != nil {
		s.progress(stage)
	}
}

// Run carrega todas as tabelas e devolve a análise completa
func (s *Service) Run(ctx context.Context) (*Analysis, error) {
	dataset, err := s.LoadDataset(ctx)
	if err != nil {
		return nil, err
	}
	return Analyze(dataset, s.options), nil
}

// LoadDataset abre a conexão, executa as oito consultas em sequência e fecha a
// conexão em qualquer caminho de saída. Falha em qualquer consulta interrompe a carga.
func (s *Service) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	logger := log.ForContext(ctx).WithStage(domain.StageConnect)

	repo, closer, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.WithError(err).Warn("Erro ao fechar conexão com o banco")
		}
	}()
	logger.Info("Conexão com o banco estabelecida")
	s.notify(domain.StageConnect)

	logger = log.ForContext(ctx).WithStage(domain.StageQuery)
	startedAt := time.Now()

	dataset := &domain.Dataset{}

	overview, err := repo.GetOverview(ctx)
	if err != nil {
		return nil, err
	}
	dataset.Overview = *overview

	if dataset.Yearly, err = repo.GetYearly(ctx); err != nil {
		return nil, err
	}
	if dataset.Monthly, err = repo.GetMonthly(ctx); err != nil {
		return nil, err
	}
	if dataset.Markets, err = repo.GetMarkets(ctx); err != nil {
		return nil, err
	}
	if dataset.Customers, err = repo.GetCustomers(ctx); err != nil {
		return nil, err
	}
	if dataset.Zones, err = repo.GetZones(ctx); err != nil {
		return nil, err
	}
	if dataset.Heatmap, err = repo.GetHeatmap(ctx); err != nil {
		return nil, err
	}
	if dataset.Amounts, err = repo.GetTransactionAmounts(ctx); err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"rows":        len(dataset.Amounts),
		"duration_ms": time.Since(startedAt).Milliseconds(),
	}).Info("Consultas concluídas")
	s.notify(domain.StageQuery)

	return dataset, nil
}

// Analyze acrescenta as colunas derivadas ao dataset e calcula os recortes usados
// no relatório e nos gráficos
func Analyze(dataset *domain.Dataset, options Options) *Analysis {
	ApplyYoYGrowth(dataset.Yearly)
	ApplyMarketShares(dataset.Markets)
	ApplyCustomerShares(dataset.Customers)
	ApplyZoneShares(dataset.Zones)

	boxplotAmounts, threshold := WithoutOutliers(dataset.Amounts, options.OutlierQuantile)

	return &Analysis{
		Dataset:               dataset,
		ReportMarkets:         TopMarkets(dataset.Markets, ReportTopMarkets),
		ReportCustomers:       TopCustomers(dataset.Customers, ReportTopCustomers),
		ChartMarkets:          TopMarkets(dataset.Markets, options.ChartTopMarkets),
		ChartCustomers:        TopCustomers(dataset.Customers, options.ChartTopCustomers),
		MarketConcentration:   MarketConcentration(dataset.Markets, ConcentrationTopMarkets),
		CustomerConcentration: CustomerConcentration(dataset.Customers, ConcentrationTopCustomers),
		BoxplotAmounts:        boxplotAmounts,
		OutlierThreshold:      threshold,
	}
}
