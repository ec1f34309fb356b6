package charting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/usecases/analyzing"
)

func tickLabels(t *testing.T, marker plot.Ticker) []string {
	t.Helper()
	ticks, ok := marker.(plot.ConstantTicks)
	require.True(t, ok, "eixo sem rótulos nominais")

	labels := make([]string, len(ticks))
	for i, tick := range ticks {
		assert.Equal(t, float64(i), tick.Value)
		labels[i] = tick.Label
	}
	return labels
}

func topSevenMarkets() []domain.MarketSummary {
	return []domain.MarketSummary{
		{Market: "Delhi NCR", Revenue: 7_000_000},
		{Market: "Mumbai", Revenue: 6_000_000},
		{Market: "Ahmedabad", Revenue: 5_000_000},
		{Market: "Bhopal", Revenue: 4_000_000},
		{Market: "Nagpur", Revenue: 3_000_000},
		{Market: "Kochi", Revenue: 2_000_000},
		{Market: "Chennai", Revenue: 1_000_000},
	}
}

func TestNewHorizontalBars_LargestOnTop(t *testing.T) {
	markets := topSevenMarkets()
	names := make([]string, len(markets))
	revenues := make([]float64, len(markets))
	for i, m := range markets {
		names[i] = m.Market
		revenues[i] = m.Revenue
	}

	layers, err := newHorizontalBars(names, revenues, true, ColorPrimary)
	require.NoError(t, err)

	assert.True(t, layers.bars.Horizontal)
	assert.Equal(t, plotter.Values{1, 2, 3, 4, 5, 6, 7}, layers.bars.Values)
	assert.Equal(t, ColorPrimary, layers.bars.Color)
	assert.Equal(t, []string{"Chennai", "Kochi", "Nagpur", "Bhopal", "Ahmedabad", "Mumbai", "Delhi NCR"}, layers.names)

	// Destaque sobre a barra do topo, que é o maior mercado
	require.NotNil(t, layers.top)
	assert.Equal(t, ColorAccent, layers.top.Color)
	assert.Equal(t, plotter.Values{7}, layers.top.Values)
	assert.Equal(t, 6.0, layers.top.XMin)
	assert.True(t, layers.top.Horizontal)

	require.Equal(t, 7, layers.labels.Len())
	assert.Equal(t, "7.0M", layers.labels.Labels[6])
	assert.Equal(t, "1.0M", layers.labels.Labels[0])
}

func TestNewHorizontalBars_NoHighlight(t *testing.T) {
	layers, err := newHorizontalBars([]string{"Electricalsara Stores", "Nixon"}, []float64{6_000_000, 3_500_000}, false, ColorSecondary)
	require.NoError(t, err)

	assert.Nil(t, layers.top)
	assert.Equal(t, ColorSecondary, layers.bars.Color)
	assert.Equal(t, plotter.Values{3.5, 6}, layers.bars.Values)
}

func TestTopMarketsChart_TickOrder(t *testing.T) {
	p, err := TopMarketsChart(topSevenMarkets())
	require.NoError(t, err)

	assert.Equal(t, "Top 7 Mercados por Faturamento", p.Title.Text)
	labels := tickLabels(t, p.Y.Tick.Marker)
	assert.Equal(t, "Delhi NCR", labels[len(labels)-1])
	assert.Equal(t, "Chennai", labels[0])
	assert.Equal(t, 0.0, p.X.Min)
}

func TestTopCustomersChart_TickOrder(t *testing.T) {
	p, err := TopCustomersChart([]domain.CustomerSummary{
		{Customer: "Electricalsara Stores", Revenue: 6_000_000},
		{Customer: "Excel Stores", Revenue: 4_000_000},
		{Customer: "Nixon", Revenue: 3_500_000},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Nixon", "Excel Stores", "Electricalsara Stores"}, tickLabels(t, p.Y.Tick.Marker))
}

func growthYears() []domain.YearlySummary {
	years := []domain.YearlySummary{
		{Year: 2018, Revenue: 3_000_000},
		{Year: 2019, Revenue: 4_000_000},
		{Year: 2020, Revenue: 2_500_000},
		{Year: 2021, Revenue: 2_500_000},
	}
	analyzing.ApplyYoYGrowth(years)
	return years
}

func TestNewGrowthLayers(t *testing.T) {
	layers, err := newGrowthLayers(growthYears())
	require.NoError(t, err)

	require.Len(t, layers.bars, 4)
	assert.Equal(t, []string{"2018", "2019", "2020", "2021"}, layers.names)

	tests := []struct {
		name  string
		value float64
		color interface{}
	}{
		{"Primeiro ano em zero", 0, ColorGreen},
		{"Crescimento positivo", 100.0 / 3, ColorGreen},
		{"Queda em vermelho", -37.5, ColorRed},
		{"Sem variação conta como não negativo", 0, ColorGreen},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := layers.bars[i]
			require.Len(t, bar.Values, 1)
			assert.InDelta(t, tt.value, bar.Values[0], 1e-9)
			assert.Equal(t, tt.color, bar.Color)
			assert.Equal(t, float64(i), bar.XMin)
		})
	}

	// Linha tracejada no zero cobrindo todas as barras
	require.NotNil(t, layers.zero)
	assert.NotEmpty(t, layers.zero.Dashes)
	assert.Equal(t, ColorGray, layers.zero.Color)
	require.Len(t, layers.zero.XYs, 2)
	assert.Equal(t, 0.0, layers.zero.XYs[0].Y)
	assert.Equal(t, 0.0, layers.zero.XYs[1].Y)
	assert.Equal(t, -0.5, layers.zero.XYs[0].X)
	assert.Equal(t, 3.5, layers.zero.XYs[1].X)
}

func TestGrowthChart_Axis(t *testing.T) {
	p, err := GrowthChart(growthYears())
	require.NoError(t, err)

	assert.Equal(t, []string{"2018", "2019", "2020", "2021"}, tickLabels(t, p.X.Tick.Marker))
	assert.Less(t, p.Y.Min, -37.5)
	assert.Greater(t, p.Y.Max, 100.0/3)
}

func TestZoneBoxes_FollowZoneOrder(t *testing.T) {
	amounts := []domain.TransactionAmount{
		{Zone: "South", Amount: 300},
		{Zone: "North", Amount: 100},
		{Zone: "North", Amount: 200},
		{Zone: "South", Amount: 500},
		{Zone: "Central", Amount: 50},
	}
	zones := []string{"North", "Central", "South"}

	boxes, err := zoneBoxes(amounts, zones)
	require.NoError(t, err)

	require.Len(t, boxes, 3)
	for i, box := range boxes {
		assert.Equal(t, float64(i), box.Location)
		assert.Equal(t, boxColors[i], box.FillColor)
	}
	assert.Equal(t, 150.0, boxes[0].Median)
	assert.Equal(t, 50.0, boxes[1].Median)
	assert.Equal(t, 400.0, boxes[2].Median)

	p, err := ZoneBoxplotChart(amounts, zones)
	require.NoError(t, err)
	assert.Equal(t, zones, tickLabels(t, p.X.Tick.Marker))
}

func TestZoneBoxes_SkipsEmptyZoneKeepingPosition(t *testing.T) {
	amounts := []domain.TransactionAmount{
		{Zone: "North", Amount: 100},
		{Zone: "South", Amount: 300},
	}

	boxes, err := zoneBoxes(amounts, []string{"North", "Central", "South"})
	require.NoError(t, err)

	require.Len(t, boxes, 2)
	assert.Equal(t, 0.0, boxes[0].Location)
	assert.Equal(t, 2.0, boxes[1].Location)
}

func TestNewRevenueHeatMap_MissingCellsBlank(t *testing.T) {
	grid := newRevenueGrid([]domain.HeatmapCell{
		{Year: 2018, MonthNum: 1, Revenue: 1_000_000},
		{Year: 2019, MonthNum: 3, Revenue: 4_000_000},
	})
	heatmap := newRevenueHeatMap(grid)

	assert.Nil(t, heatmap.NaN)
	assert.True(t, math.IsNaN(grid.Z(1, 0)))
	assert.Equal(t, 1.0, heatmap.Min)
	assert.Equal(t, 4.0, heatmap.Max)
}
