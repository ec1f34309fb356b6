package charting

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/usecases/analyzing"
)

func sampleAnalysis() *analyzing.Analysis {
	dataset := &domain.Dataset{
		Overview: domain.Overview{TotalTransactions: 6, TotalRevenue: 9_500_000},
		Yearly: []domain.YearlySummary{
			{Year: 2018, Revenue: 3_000_000},
			{Year: 2019, Revenue: 4_000_000},
			{Year: 2020, Revenue: 2_500_000},
		},
		Monthly: []domain.MonthlySummary{
			{Year: 2018, Month: "January", MonthNum: 1, Revenue: 1_000_000},
			{Year: 2018, Month: "February", MonthNum: 2, Revenue: 2_000_000},
			{Year: 2019, Month: "March", MonthNum: 3, Revenue: 4_000_000},
			{Year: 2020, Month: "January", MonthNum: 1, Revenue: 2_500_000},
		},
		Markets: []domain.MarketSummary{
			{Market: "Delhi NCR", Zone: "North", Revenue: 5_000_000},
			{Market: "Mumbai", Zone: "Central", Revenue: 3_000_000},
			{Market: "Chennai", Zone: "South", Revenue: 1_500_000},
		},
		Customers: []domain.CustomerSummary{
			{Customer: "Electricalsara Stores", Revenue: 6_000_000},
			{Customer: "Nixon", Revenue: 3_500_000},
		},
		Zones: []domain.ZoneSummary{
			{Zone: "North", Markets: 1, Revenue: 5_000_000},
			{Zone: "Central", Markets: 1, Revenue: 3_000_000},
			{Zone: "South", Markets: 1, Revenue: 1_500_000},
		},
		Heatmap: []domain.HeatmapCell{
			{Year: 2018, MonthNum: 1, Revenue: 1_000_000},
			{Year: 2018, MonthNum: 2, Revenue: 2_000_000},
			{Year: 2019, MonthNum: 3, Revenue: 4_000_000},
			{Year: 2020, MonthNum: 1, Revenue: 2_500_000},
		},
		Amounts: []domain.TransactionAmount{
			{Zone: "North", Amount: 100},
			{Zone: "North", Amount: 250},
			{Zone: "North", Amount: 400},
			{Zone: "Central", Amount: 120},
			{Zone: "Central", Amount: 90},
			{Zone: "South", Amount: 9_000_000},
		},
	}
	return analyzing.Analyze(dataset, analyzing.DefaultOptions())
}

func TestRenderer_RenderAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	renderer := NewRenderer(dir)

	var saved []string
	paths, err := renderer.RenderEach(context.Background(), sampleAnalysis(), func(path string) {
		saved = append(saved, path)
	})
	require.NoError(t, err)

	require.Len(t, paths, 8)
	assert.Equal(t, paths, saved)

	for i, file := range ChartFiles() {
		assert.Equal(t, filepath.Join(dir, file), paths[i])

		info, err := os.Stat(paths[i])
		require.NoError(t, err, file)
		assert.Greater(t, info.Size(), int64(0), file)

		header := make([]byte, 8)
		f, err := os.Open(paths[i])
		require.NoError(t, err)
		_, err = f.Read(header)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, "\x89PNG\r\n\x1a\n", string(header), file)
	}
}

func TestRenderer_RenderAll_EmptyAnalysis(t *testing.T) {
	renderer := NewRenderer(t.TempDir())

	paths, err := renderer.RenderAll(context.Background(), nil)

	assert.Nil(t, paths)
	assert.True(t, errors.Is(err, domain.ErrRender))
}

func TestRenderer_RenderAll_InvalidDir(t *testing.T) {
	// Um arquivo no lugar do diretório impede o MkdirAll
	file := filepath.Join(t.TempDir(), "charts")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewRenderer(file).RenderAll(context.Background(), sampleAnalysis())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRender))
}

func TestRenderer_RenderAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths, err := NewRenderer(t.TempDir()).RenderAll(ctx, sampleAnalysis())

	assert.Empty(t, paths)
	assert.True(t, errors.Is(err, domain.ErrRender))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestChartFiles(t *testing.T) {
	assert.Equal(t, []string{
		"01_revenue_by_year.png",
		"02_monthly_trend.png",
		"03_top7_markets.png",
		"04_top5_customers.png",
		"05_zone_distribution.png",
		"06_monthly_heatmap.png",
		"07_zone_boxplot.png",
		"08_yoy_growth.png",
	}, ChartFiles())
}

func TestFormatLabels(t *testing.T) {
	assert.Equal(t, "12.3M", FormatBarValue(12.34))
	assert.Equal(t, "0.0M", FormatBarValue(0))
	assert.Equal(t, "+33.3%", FormatGrowthValue(33.33))
	assert.Equal(t, "-37.5%", FormatGrowthValue(-37.5))
}

func TestNewPieChart(t *testing.T) {
	_, err := newPieChart([]float64{1, 2}, []string{"North"})
	assert.Error(t, err)

	_, err = newPieChart([]float64{1, -2}, []string{"North", "South"})
	assert.Error(t, err)

	_, err = newPieChart([]float64{1, math.NaN()}, []string{"North", "South"})
	assert.Error(t, err)

	pie, err := newPieChart([]float64{5, 3}, []string{"North", "South"})
	require.NoError(t, err)
	assert.Equal(t, 0, pie.Explode)
}

func TestRevenueGrid(t *testing.T) {
	grid := newRevenueGrid([]domain.HeatmapCell{
		{Year: 2019, MonthNum: 3, Revenue: 4_000_000},
		{Year: 2018, MonthNum: 1, Revenue: 1_000_000},
		{Year: 2018, MonthNum: 13, Revenue: 99},
	})

	cols, rows := grid.Dims()
	assert.Equal(t, 12, cols)
	assert.Equal(t, 2, rows)
	assert.Equal(t, []int{2018, 2019}, grid.years)

	assert.Equal(t, 1.0, grid.Z(0, 0))
	assert.Equal(t, 4.0, grid.Z(2, 1))
	assert.True(t, math.IsNaN(grid.Z(1, 0)))
	assert.Equal(t, 1.0, grid.Min())
	assert.Equal(t, 4.0, grid.Max())
}

func TestRevenueGrid_Empty(t *testing.T) {
	grid := newRevenueGrid(nil)

	_, rows := grid.Dims()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0.0, grid.Min())
	assert.Equal(t, 0.0, grid.Max())
}

func TestBuilders_EmptyTables(t *testing.T) {
	_, err := RevenueByYearChart(nil)
	assert.NoError(t, err)
	_, err = MonthlyTrendChart(nil)
	assert.NoError(t, err)
	_, err = TopMarketsChart(nil)
	assert.NoError(t, err)
	_, err = TopCustomersChart(nil)
	assert.NoError(t, err)
	_, err = ZoneDistributionChart(nil)
	assert.NoError(t, err)
	_, err = HeatmapChart(nil)
	assert.NoError(t, err)
	_, err = ZoneBoxplotChart(nil, nil)
	assert.NoError(t, err)
	_, err = GrowthChart(nil)
	assert.NoError(t, err)
}

func TestMonthlyTrendTitle(t *testing.T) {
	title := monthlyTrendTitle([]domain.MonthlySummary{{Year: 2019}, {Year: 2017}, {Year: 2020}})
	assert.Equal(t, "Tendência de Faturamento Mensal (2017-2020)", title)
}
