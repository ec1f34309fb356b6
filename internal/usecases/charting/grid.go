package charting

import (
	"math"
	"sort"

	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/utils"
)

// revenueGrid implementa plotter.GridXYZ com colunas = meses e linhas = anos.
// Células sem venda ficam NaN.
type revenueGrid struct {
	years  []int
	values [][]float64 // [linha ano][coluna mês], em milhões
}

func newRevenueGrid(cells []domain.HeatmapCell) revenueGrid {
	seen := map[int]bool{}
	for _, cell := range cells {
		seen[cell.Year] = true
	}

	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)

	row := make(map[int]int, len(years))
	values := make([][]float64, len(years))
	for i, year := range years {
		row[year] = i
		values[i] = make([]float64, 12)
		for c := range values[i] {
			values[i][c] = math.NaN()
		}
	}

	for _, cell := range cells {
		if cell.MonthNum < 1 || cell.MonthNum > 12 {
			continue
		}
		r, c := row[cell.Year], cell.MonthNum-1
		v := utils.Millions(cell.Revenue)
		if math.IsNaN(values[r][c]) {
			values[r][c] = v
			continue
		}
		values[r][c] += v
	}

	return revenueGrid{years: years, values: values}
}

func (g revenueGrid) Dims() (c, r int) { return 12, len(g.years) }

func (g revenueGrid) Z(c, r int) float64 { return g.values[r][c] }

func (g revenueGrid) X(c int) float64 { return float64(c) }

func (g revenueGrid) Y(r int) float64 { return float64(r) }

func (g revenueGrid) Min() float64 {
	min := math.Inf(1)
	for _, row := range g.values {
		for _, v := range row {
			if !math.IsNaN(v) {
				min = math.Min(min, v)
			}
		}
	}
	if math.IsInf(min, 1) {
		return 0
	}
	return min
}

func (g revenueGrid) Max() float64 {
	max := math.Inf(-1)
	for _, row := range g.values {
		for _, v := range row {
			if !math.IsNaN(v) {
				max = math.Max(max, v)
			}
		}
	}
	if math.IsInf(max, -1) {
		return 0
	}
	return max
}
