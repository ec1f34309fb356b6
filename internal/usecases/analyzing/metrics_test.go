package analyzing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report/internal/domain"
)

func TestShareOfTotal(t *testing.T) {
	tests := []struct {
		name     string
		revenues []float64
		expected []float64
	}{
		{name: "Mercados 60/30/10", revenues: []float64{60, 30, 10}, expected: []float64{60, 30, 10}},
		{name: "Valor único é 100%", revenues: []float64{42}, expected: []float64{100}},
		{name: "Total zero não divide por zero", revenues: []float64{0, 0}, expected: []float64{0, 0}},
		{name: "Lista vazia", revenues: []float64{}, expected: []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := ShareOfTotal(tt.revenues)
			require.Len(t, shares, len(tt.expected))
			for i := range shares {
				assert.InDelta(t, tt.expected[i], shares[i], 1e-9)
				assert.False(t, math.IsNaN(shares[i]))
			}
		})
	}
}

func TestShareOfTotal_SumsToHundred(t *testing.T) {
	revenues := []float64{1234567.89, 98765.4, 0.01, 5e6, 333333.33, 7}

	total := 0.0
	for _, share := range ShareOfTotal(revenues) {
		total += share
	}

	assert.InDelta(t, 100.0, total, 1e-9)
}

func TestApplyMarketShares_AndConcentration(t *testing.T) {
	markets := []domain.MarketSummary{
		{Market: "Delhi NCR", Revenue: 60},
		{Market: "Mumbai", Revenue: 30},
		{Market: "Ahmedabad", Revenue: 10},
	}

	ApplyMarketShares(markets)

	assert.InDelta(t, 60.0, markets[0].PctOfTotal, 1e-9)
	assert.InDelta(t, 30.0, markets[1].PctOfTotal, 1e-9)
	assert.InDelta(t, 10.0, markets[2].PctOfTotal, 1e-9)
	assert.InDelta(t, 100.0, MarketConcentration(markets, 3), 1e-9)
	assert.InDelta(t, 90.0, MarketConcentration(markets, 2), 1e-9)
}

func TestApplyZoneAndCustomerShares_ZeroTotal(t *testing.T) {
	zones := []domain.ZoneSummary{{Zone: "North"}, {Zone: "South"}}
	customers := []domain.CustomerSummary{{Customer: "Electricalsara Stores"}}

	ApplyZoneShares(zones)
	ApplyCustomerShares(customers)

	assert.Equal(t, 0.0, zones[0].PctOfTotal)
	assert.Equal(t, 0.0, zones[1].PctOfTotal)
	assert.Equal(t, 0.0, customers[0].PctOfTotal)
	assert.Equal(t, 0.0, CustomerConcentration(customers, 5))
}

func TestApplyYoYGrowth(t *testing.T) {
	years := []domain.YearlySummary{
		{Year: 2019, Revenue: 150},
		{Year: 2018, Revenue: 100},
		{Year: 2020, Revenue: 120},
	}

	ApplyYoYGrowth(years)

	require.Equal(t, []int{2018, 2019, 2020}, []int{years[0].Year, years[1].Year, years[2].Year})
	assert.Nil(t, years[0].YoYGrowth, "primeiro ano não tem crescimento definido")
	require.NotNil(t, years[1].YoYGrowth)
	assert.InDelta(t, 50.0, *years[1].YoYGrowth, 1e-9)
	require.NotNil(t, years[2].YoYGrowth)
	assert.InDelta(t, -20.0, *years[2].YoYGrowth, 1e-9)

	assert.Equal(t, []float64{0, 50, -20}, roundSeries(GrowthSeries(years)))
}

func TestApplyYoYGrowth_PreviousYearWithoutRevenue(t *testing.T) {
	years := []domain.YearlySummary{
		{Year: 2017, Revenue: 0},
		{Year: 2018, Revenue: 100},
		{Year: 2019, Revenue: 100},
	}

	ApplyYoYGrowth(years)

	assert.Nil(t, years[0].YoYGrowth)
	assert.Nil(t, years[1].YoYGrowth, "crescimento sobre zero é indefinido")
	require.NotNil(t, years[2].YoYGrowth)
	assert.Equal(t, 0.0, *years[2].YoYGrowth, "0% de crescimento é diferente de ausência de ano anterior")
}

func TestTopMarkets_StableDescending(t *testing.T) {
	markets := []domain.MarketSummary{
		{Market: "A", Revenue: 10},
		{Market: "B", Revenue: 30},
		{Market: "C", Revenue: 30},
		{Market: "D", Revenue: 50},
		{Market: "E", Revenue: 10},
	}

	top := TopMarkets(markets, 4)

	assert.Equal(t, []string{"D", "B", "C", "A"}, marketNames(top))
	assert.Equal(t, "A", markets[0].Market, "a entrada não é alterada")
	assert.Len(t, TopMarkets(markets, 10), 5)
}

func TestTopCustomers_StableDescending(t *testing.T) {
	customers := []domain.CustomerSummary{
		{Customer: "Nomad Stores", Revenue: 5},
		{Customer: "Premium Stores", Revenue: 7},
		{Customer: "Excel Stores", Revenue: 5},
	}

	top := TopCustomers(customers, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "Premium Stores", top[0].Customer)
	assert.Equal(t, "Nomad Stores", top[1].Customer)
}

func TestQuantile(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}

	assert.Equal(t, 1.0, Quantile(values, 0))
	assert.Equal(t, 3.0, Quantile(values, 0.5))
	assert.Equal(t, 5.0, Quantile(values, 1))
	assert.InDelta(t, 4.96, Quantile(values, 0.99), 1e-9)
	assert.True(t, math.IsNaN(Quantile(nil, 0.99)))
}

func TestWithoutOutliers_GlobalThreshold(t *testing.T) {
	amounts := make([]domain.TransactionAmount, 0, 100)
	for i := 1; i <= 99; i++ {
		amounts = append(amounts, domain.TransactionAmount{Zone: "North", Amount: float64(i)})
	}
	// Um único valor extremo em outra zona
	amounts = append(amounts, domain.TransactionAmount{Zone: "South", Amount: 10000})

	kept, threshold := WithoutOutliers(amounts, 0.99)

	values := make([]float64, len(amounts))
	for i, amount := range amounts {
		values[i] = amount.Amount
	}
	assert.Equal(t, Quantile(values, 0.99), threshold)

	for _, amount := range kept {
		assert.Less(t, amount.Amount, threshold)
	}
	for _, amount := range amounts {
		if amount.Amount >= threshold {
			assert.NotContains(t, kept, amount)
		}
	}
	assert.Len(t, kept, 99)

	grouped := AmountsByZone(kept, []string{"South", "North"})
	assert.Empty(t, grouped[0], "o outlier da zona South é removido pelo corte global")
	assert.Len(t, grouped[1], 99)
}

func TestWithoutOutliers_EdgeCases(t *testing.T) {
	kept, threshold := WithoutOutliers(nil, 0.99)
	assert.Empty(t, kept)
	assert.True(t, math.IsInf(threshold, 1))

	// q = 1 segue a mesma regra: o maior valor é o limite e sai
	amounts := []domain.TransactionAmount{
		{Zone: "North", Amount: 1},
		{Zone: "South", Amount: 3},
		{Zone: "North", Amount: 2},
	}
	kept, threshold = WithoutOutliers(amounts, 1)
	assert.Equal(t, 3.0, threshold)
	assert.Equal(t, []domain.TransactionAmount{{Zone: "North", Amount: 1}, {Zone: "North", Amount: 2}}, kept)
}

func TestQuantile_ClampsOutOfRange(t *testing.T) {
	values := []float64{4, 1, 3, 2}

	assert.Equal(t, 4.0, Quantile(values, 1.5))
	assert.Equal(t, 1.0, Quantile(values, -0.5))
}

func TestAmountsByZone_IgnoresUnknownZones(t *testing.T) {
	amounts := []domain.TransactionAmount{
		{Zone: "North", Amount: 1},
		{Zone: "Central", Amount: 2},
		{Zone: "West", Amount: 3},
	}

	grouped := AmountsByZone(amounts, []string{"Central", "North"})

	assert.Equal(t, [][]float64{{2}, {1}}, grouped)
}

func marketNames(markets []domain.MarketSummary) []string {
	names := make([]string, len(markets))
	for i, market := range markets {
		names[i] = market.Market
	}
	return names
}

func roundSeries(values []float64) []float64 {
	rounded := make([]float64, len(values))
	for i, v := range values {
		rounded[i] = math.Round(v*1e6) / 1e6
	}
	return rounded
}
