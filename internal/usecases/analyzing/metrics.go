package analyzing

import (
	"math"
	"sort"

	"github.com/vfg2006/sales-report/internal/domain"
)

// ShareOfTotal calcula a participação percentual de cada valor no total.
// Com total zero todas as participações são zero.
func ShareOfTotal(revenues []float64) []float64 {
	shares := make([]float64, len(revenues))

	total := 0.0
	for _, revenue := range revenues {
		total += revenue
	}
	if total == 0 {
		return shares
	}

	for i, revenue := range revenues {
		shares[i] = revenue / total * 100
	}
	return shares
}

// ApplyMarketShares preenche PctOfTotal de cada mercado
func ApplyMarketShares(markets []domain.MarketSummary) {
	revenues := make([]float64, len(markets))
	for i, market := range markets {
		revenues[i] = market.Revenue
	}
	for i, share := range ShareOfTotal(revenues) {
		markets[i].PctOfTotal = share
	}
}

// ApplyCustomerShares preenche PctOfTotal de cada cliente
func ApplyCustomerShares(customers []domain.CustomerSummary) {
	revenues := make([]float64, len(customers))
	for i, customer := range customers {
		revenues[i] = customer.Revenue
	}
	for i, share := range ShareOfTotal(revenues) {
		customers[i].PctOfTotal = share
	}
}

// ApplyZoneShares preenche PctOfTotal de cada zona
func ApplyZoneShares(zones []domain.ZoneSummary) {
	revenues := make([]float64, len(zones))
	for i, zone := range zones {
		revenues[i] = zone.Revenue
	}
	for i, share := range ShareOfTotal(revenues) {
		zones[i].PctOfTotal = share
	}
}

// ApplyYoYGrowth ordena os anos de forma crescente e calcula o crescimento
// sobre o ano anterior. O primeiro ano, e qualquer ano cujo anterior faturou
// zero, fica sem valor (nil).
func ApplyYoYGrowth(years []domain.YearlySummary) {
	sort.SliceStable(years, func(i, j int) bool {
		return years[i].Year < years[j].Year
	})

	for i := range years {
		years[i].YoYGrowth = nil
		if i == 0 {
			continue
		}

		previous := years[i-1].Revenue
		if previous == 0 {
			continue
		}

		growth := (years[i].Revenue - previous) / previous * 100
		years[i].YoYGrowth = &growth
	}
}

// GrowthSeries devolve o crescimento de cada ano para o gráfico,
// com zero onde não há ano anterior
func GrowthSeries(years []domain.YearlySummary) []float64 {
	series := make([]float64, len(years))
	for i, year := range years {
		if year.YoYGrowth != nil {
			series[i] = *year.YoYGrowth
		}
	}
	return series
}

// Concentration soma as participações das n primeiras linhas
func Concentration(shares []float64, n int) float64 {
	if n > len(shares) {
		n = len(shares)
	}

	total := 0.0
	for _, share := range shares[:n] {
		total += share
	}
	return total
}

func MarketConcentration(markets []domain.MarketSummary, n int) float64 {
	top := TopMarkets(markets, n)
	shares := make([]float64, len(top))
	for i, market := range top {
		shares[i] = market.PctOfTotal
	}
	return Concentration(shares, n)
}

func CustomerConcentration(customers []domain.CustomerSummary, n int) float64 {
	top := TopCustomers(customers, n)
	shares := make([]float64, len(top))
	for i, customer := range top {
		shares[i] = customer.PctOfTotal
	}
	return Concentration(shares, n)
}

// TopMarkets devolve os n mercados de maior faturamento; empates mantêm a ordem de entrada
func TopMarkets(markets []domain.MarketSummary, n int) []domain.MarketSummary {
	sorted := make([]domain.MarketSummary, len(markets))
	copy(sorted, markets)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Revenue > sorted[j].Revenue
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// TopCustomers devolve os n clientes de maior faturamento; empates mantêm a ordem de entrada
func TopCustomers(customers []domain.CustomerSummary, n int) []domain.CustomerSummary {
	sorted := make([]domain.CustomerSummary, len(customers))
	copy(sorted, customers)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Revenue > sorted[j].Revenue
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Quantile calcula o quantil q (0..1) com interpolação linear entre as posições vizinhas.
// Devolve NaN para uma lista vazia; q fora de [0, 1] é limitado ao intervalo.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q = math.Max(0, math.Min(1, q))
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}

	fraction := pos - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*fraction
}

// WithoutOutliers remove as transações com valor maior ou igual ao quantil q,
// calculado sobre todos os valores (não por zona). Com q = 1 o limite é o
// maior valor, que também sai.
func WithoutOutliers(amounts []domain.TransactionAmount, q float64) ([]domain.TransactionAmount, float64) {
	if len(amounts) == 0 {
		return amounts, math.Inf(1)
	}

	values := make([]float64, len(amounts))
	for i, amount := range amounts {
		values[i] = amount.Amount
	}
	threshold := Quantile(values, q)

	kept := make([]domain.TransactionAmount, 0, len(amounts))
	for _, amount := range amounts {
		if amount.Amount < threshold {
			kept = append(kept, amount)
		}
	}
	return kept, threshold
}

// AmountsByZone agrupa os valores por zona, na ordem pedida
func AmountsByZone(amounts []domain.TransactionAmount, zones []string) [][]float64 {
	index := make(map[string]int, len(zones))
	for i, zone := range zones {
		index[zone] = i
	}

	grouped := make([][]float64, len(zones))
	for _, amount := range amounts {
		if i, ok := index[amount.Zone]; ok {
			grouped[i] = append(grouped[i], amount.Amount)
		}
	}
	return grouped
}
