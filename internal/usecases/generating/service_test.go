package generating

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report/infrastructure/repository"
	"github.com/vfg2006/sales-report/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/usecases/analyzing"
	"github.com/vfg2006/sales-report/internal/usecases/charting"
	"github.com/vfg2006/sales-report/internal/usecases/exporting"
	"github.com/vfg2006/sales-report/internal/usecases/reporting"
	"github.com/vfg2006/sales-report/pkg/log"
	"go.uber.org/mock/gomock"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func connectTo(repo repository.SalesAnalyticsRepository) analyzing.ConnectFunc {
	return func(context.Context) (repository.SalesAnalyticsRepository, io.Closer, error) {
		return repo, nopCloser{}, nil
	}
}

func expectAllQueries(repo *mocks.MockSalesAnalyticsRepository) {
	gomock.InOrder(
		repo.EXPECT().GetOverview(gomock.Any()).Return(&domain.Overview{
			TotalTransactions: 5,
			TotalRevenue:      5_000_000,
			TotalQuantity:     120,
			UniqueCustomers:   2,
			UniqueMarkets:     3,
			StartDate:         time.Date(2018, 1, 2, 0, 0, 0, 0, time.UTC),
			EndDate:           time.Date(2020, 3, 9, 0, 0, 0, 0, time.UTC),
		}, nil),
		repo.EXPECT().GetYearly(gomock.Any()).Return([]domain.YearlySummary{
			{Year: 2018, Revenue: 1_000_000, Transactions: 2},
			{Year: 2019, Revenue: 1_500_000, Transactions: 2},
			{Year: 2020, Revenue: 2_500_000, Transactions: 1},
		}, nil),
		repo.EXPECT().GetMonthly(gomock.Any()).Return([]domain.MonthlySummary{
			{Year: 2018, Month: "January", MonthNum: 1, Revenue: 1_000_000},
			{Year: 2019, Month: "June", MonthNum: 6, Revenue: 1_500_000},
			{Year: 2020, Month: "March", MonthNum: 3, Revenue: 2_500_000},
		}, nil),
		repo.EXPECT().GetMarkets(gomock.Any()).Return([]domain.MarketSummary{
			{Market: "Delhi NCR", Zone: "North", Revenue: 3_000_000},
			{Market: "Mumbai", Zone: "Central", Revenue: 1_500_000},
			{Market: "Chennai", Zone: "South", Revenue: 500_000},
		}, nil),
		repo.EXPECT().GetCustomers(gomock.Any()).Return([]domain.CustomerSummary{
			{Customer: "Electricalsara Stores", CustomerType: "Brick & Mortar", Revenue: 4_000_000},
			{Customer: "Nixon", CustomerType: "E-Commerce", Revenue: 1_000_000},
		}, nil),
		repo.EXPECT().GetZones(gomock.Any()).Return([]domain.ZoneSummary{
			{Zone: "North", Markets: 1, Revenue: 3_000_000},
			{Zone: "Central", Markets: 1, Revenue: 1_500_000},
			{Zone: "South", Markets: 1, Revenue: 500_000},
		}, nil),
		repo.EXPECT().GetHeatmap(gomock.Any()).Return([]domain.HeatmapCell{
			{Year: 2018, MonthNum: 1, Revenue: 1_000_000},
			{Year: 2019, MonthNum: 6, Revenue: 1_500_000},
			{Year: 2020, MonthNum: 3, Revenue: 2_500_000},
		}, nil),
		repo.EXPECT().GetTransactionAmounts(gomock.Any()).Return([]domain.TransactionAmount{
			{Zone: "North", Amount: 1_000},
			{Zone: "North", Amount: 2_000},
			{Zone: "Central", Amount: 1_500},
			{Zone: "Central", Amount: 900},
			{Zone: "South", Amount: 500_000},
		}, nil),
	)
}

func newService(t *testing.T, repo repository.SalesAnalyticsRepository, dir string, out io.Writer) *Service {
	t.Helper()
	return NewService(
		analyzing.NewService(connectTo(repo), analyzing.DefaultOptions()),
		reporting.NewReporter(out),
		charting.NewRenderer(filepath.Join(dir, "charts")),
		exporting.NewExporter(dir, exporting.Options{XLSXEnabled: true, PDFEnabled: true}),
		out,
	)
}

func TestService_Generate(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSalesAnalyticsRepository(ctrl)
	expectAllQueries(repo)

	dir := t.TempDir()
	var out bytes.Buffer

	result, err := newService(t, repo, dir, &out).Generate(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.RunID, 6)
	assert.NotEmpty(t, result.CorrelationID)
	assert.Len(t, result.Charts, 8)
	assert.Len(t, result.Files, 6)

	for _, file := range append(result.Charts, result.Files...) {
		_, err := os.Stat(file)
		assert.NoError(t, err, file)
	}

	console := out.String()
	markers := []string{
		"[1/5] Conectando ao banco de dados...",
		"Conexão estabelecida.",
		"[2/5] Executando consultas SQL...",
		"Consultas concluídas.",
		"[3/5] Relatório de métricas...",
		"Faturamento total:     Rs.5.0M",
		"[4/5] Criando gráficos...",
		"01_revenue_by_year.png",
		"08_yoy_growth.png",
		"[5/5] Exportando tabelas...",
		"- market_analysis.csv",
		"- manifest.json",
		"CONCLUÍDO",
	}
	last := -1
	for _, marker := range markers {
		idx := strings.Index(console, marker)
		require.NotEqual(t, -1, idx, "faltando %q", marker)
		assert.Greater(t, idx, last, "fora de ordem: %q", marker)
		last = idx
	}
}

func TestService_Generate_QueryErrorWritesNothing(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSalesAnalyticsRepository(ctrl)
	repo.EXPECT().GetOverview(gomock.Any()).Return(nil, domain.NewQueryError(repository.QueryOverview, errors.New(`relation "transactions" does not exist`)))

	dir := t.TempDir()
	var out bytes.Buffer

	result, err := newService(t, repo, dir, &out).Generate(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrQuery)
	assert.NotContains(t, out.String(), "[3/5]")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type failingRenderer struct{}

func (failingRenderer) RenderEach(context.Context, *analyzing.Analysis, func(string)) ([]string, error) {
	return nil, domain.NewRenderError(charting.ChartRevenueByYear, errors.New("no space left on device"))
}

func (failingRenderer) Dir() string { return "charts" }

type recordingExporter struct {
	calls int
}

func (e *recordingExporter) Export(context.Context, exporting.Run, *analyzing.Analysis, []string) ([]string, error) {
	e.calls++
	return nil, nil
}

func TestService_Generate_RenderErrorSkipsExport(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSalesAnalyticsRepository(ctrl)
	expectAllQueries(repo)

	var out bytes.Buffer
	exporter := &recordingExporter{}
	service := NewService(
		analyzing.NewService(connectTo(repo), analyzing.DefaultOptions()),
		reporting.NewReporter(&out),
		failingRenderer{},
		exporter,
		&out,
	)

	_, err := service.Generate(context.Background())

	assert.ErrorIs(t, err, domain.ErrRender)
	assert.Equal(t, 0, exporter.calls)
	assert.NotContains(t, out.String(), "CONCLUÍDO")
}
