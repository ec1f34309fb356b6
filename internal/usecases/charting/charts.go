package charting

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/usecases/analyzing"
	"github.com/vfg2006/sales-report/pkg/utils"
)

const axisRevenueLabel = "Faturamento (Milhões Rs.)"

var monthLabels = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	return p
}

// FormatBarValue formata o rótulo das barras de faturamento, ex.: 12.3M
func FormatBarValue(millions float64) string {
	return fmt.Sprintf("%.1fM", millions)
}

// FormatGrowthValue formata o rótulo das barras de crescimento, sempre com sinal
func FormatGrowthValue(pct float64) string {
	if pct < 0 {
		return fmt.Sprintf("%.1f%%", pct)
	}
	return fmt.Sprintf("+%.1f%%", pct)
}

// valueLabels cria rótulos posicionados em (x, y); vertical indica rótulo acima da barra
func valueLabels(xys plotter.XYs, labels []string, vertical bool, below bool) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}

	for i := range l.TextStyle {
		if vertical {
			l.TextStyle[i].XAlign = text.XCenter
			l.TextStyle[i].YAlign = text.YBottom
			if below {
				l.TextStyle[i].YAlign = text.YTop
			}
		} else {
			l.TextStyle[i].XAlign = text.XLeft
			l.TextStyle[i].YAlign = text.YCenter
		}
	}

	switch {
	case vertical && below:
		l.Offset = vg.Point{Y: -vg.Points(4)}
	case vertical:
		l.Offset = vg.Point{Y: vg.Points(4)}
	default:
		l.Offset = vg.Point{X: vg.Points(4)}
	}
	return l, nil
}

// RevenueByYearChart: barras verticais por ano com o valor acima de cada barra
func RevenueByYearChart(years []domain.YearlySummary) (*plot.Plot, error) {
	p := newPlot("Faturamento Total por Ano")
	p.X.Label.Text = "Ano"
	p.Y.Label.Text = axisRevenueLabel

	if len(years) == 0 {
		return p, nil
	}

	values := make(plotter.Values, len(years))
	names := make([]string, len(years))
	xys := make(plotter.XYs, len(years))
	labels := make([]string, len(years))
	for i, year := range years {
		values[i] = utils.Millions(year.Revenue)
		names[i] = strconv.Itoa(year.Year)
		xys[i] = plotter.XY{X: float64(i), Y: values[i]}
		labels[i] = FormatBarValue(values[i])
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, err
	}
	bars.Color = ColorPrimary
	bars.LineStyle.Width = 0

	l, err := valueLabels(xys, labels, true, false)
	if err != nil {
		return nil, err
	}

	p.Add(plotter.NewGrid(), bars, l)
	p.NominalX(names...)
	p.Y.Min = 0
	p.Y.Max = maxValue(values) * 1.12

	return p, nil
}

// MonthlyTrendChart: linha com área preenchida, eixo X contínuo por data
func MonthlyTrendChart(months []domain.MonthlySummary) (*plot.Plot, error) {
	p := newPlot(monthlyTrendTitle(months))
	p.X.Label.Text = "Data"
	p.Y.Label.Text = axisRevenueLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	if len(months) == 0 {
		return p, nil
	}

	xys := make(plotter.XYs, len(months))
	for i, month := range months {
		xys[i] = plotter.XY{
			X: float64(utils.MonthStart(month.Year, month.MonthNum).Unix()),
			Y: utils.Millions(month.Revenue),
		}
	}
	// Ordem cronológica independente da ordem de entrada
	sortXYs(xys)

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Color = ColorAccent
	line.Width = vg.Points(2)
	line.FillColor = withAlpha(ColorAccent, 0x4D)

	points, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	points.GlyphStyle.Color = ColorAccent
	points.GlyphStyle.Radius = vg.Points(1.5)
	points.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(plotter.NewGrid(), line, points)
	p.Y.Min = 0

	return p, nil
}

func monthlyTrendTitle(months []domain.MonthlySummary) string {
	if len(months) == 0 {
		return "Tendência de Faturamento Mensal"
	}
	first, last := months[0].Year, months[0].Year
	for _, month := range months {
		if month.Year < first {
			first = month.Year
		}
		if month.Year > last {
			last = month.Year
		}
	}
	return fmt.Sprintf("Tendência de Faturamento Mensal (%d-%d)", first, last)
}

// barLayers são as camadas de um gráfico de barras horizontais
type barLayers struct {
	bars   *plotter.BarChart
	top    *plotter.BarChart // destaque da primeira barra, nil sem destaque
	labels *plotter.Labels
	names  []string // de baixo para cima
}

// newHorizontalBars monta as barras com o primeiro item no topo do gráfico
func newHorizontalBars(names []string, revenues []float64, highlightFirst bool, barColor color.Color) (*barLayers, error) {
	n := len(revenues)

	// Invertido porque o eixo Y cresce para cima
	values := make(plotter.Values, n)
	reversedNames := make([]string, n)
	xys := make(plotter.XYs, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		pos := n - 1 - i
		values[pos] = utils.Millions(revenues[i])
		reversedNames[pos] = names[i]
		xys[pos] = plotter.XY{X: values[pos], Y: float64(pos)}
		labels[pos] = FormatBarValue(values[pos])
	}

	bars, err := plotter.NewBarChart(values, vg.Points(28))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.LineStyle.Width = 0
	bars.Color = barColor
	layers := &barLayers{bars: bars, names: reversedNames}

	if highlightFirst {
		top, err := plotter.NewBarChart(plotter.Values{values[n-1]}, vg.Points(28))
		if err != nil {
			return nil, err
		}
		top.Horizontal = true
		top.LineStyle.Width = 0
		top.Color = ColorAccent
		top.XMin = float64(n - 1)
		layers.top = top
	}

	if layers.labels, err = valueLabels(xys, labels, false, false); err != nil {
		return nil, err
	}
	return layers, nil
}

func horizontalBars(p *plot.Plot, names []string, revenues []float64, highlightFirst bool, barColor color.Color) error {
	if len(revenues) == 0 {
		return nil
	}

	layers, err := newHorizontalBars(names, revenues, highlightFirst, barColor)
	if err != nil {
		return err
	}

	p.Add(plotter.NewGrid(), layers.bars)
	if layers.top != nil {
		p.Add(layers.top)
	}
	p.Add(layers.labels)

	p.NominalY(layers.names...)
	p.X.Min = 0
	p.X.Max = maxValue(layers.bars.Values) * 1.18
	return nil
}

// TopMarketsChart: barras horizontais, o maior mercado em destaque
func TopMarketsChart(markets []domain.MarketSummary) (*plot.Plot, error) {
	p := newPlot(fmt.Sprintf("Top %d Mercados por Faturamento", len(markets)))
	p.X.Label.Text = axisRevenueLabel

	names := make([]string, len(markets))
	revenues := make([]float64, len(markets))
	for i, market := range markets {
		names[i] = market.Market
		revenues[i] = market.Revenue
	}

	if err := horizontalBars(p, names, revenues, true, ColorPrimary); err != nil {
		return nil, err
	}
	return p, nil
}

// TopCustomersChart: barras horizontais dos maiores clientes
func TopCustomersChart(customers []domain.CustomerSummary) (*plot.Plot, error) {
	p := newPlot(fmt.Sprintf("Top %d Clientes por Faturamento", len(customers)))
	p.X.Label.Text = axisRevenueLabel

	names := make([]string, len(customers))
	revenues := make([]float64, len(customers))
	for i, customer := range customers {
		names[i] = customer.Customer
		revenues[i] = customer.Revenue
	}

	if err := horizontalBars(p, names, revenues, false, ColorSecondary); err != nil {
		return nil, err
	}
	return p, nil
}

// ZoneDistributionChart: pizza com uma fatia por zona, a primeira deslocada
func ZoneDistributionChart(zones []domain.ZoneSummary) (*plot.Plot, error) {
	p := newPlot("Distribuição do Faturamento por Zona")
	p.HideAxes()

	values := make([]float64, len(zones))
	labels := make([]string, len(zones))
	for i, zone := range zones {
		values[i] = zone.Revenue
		labels[i] = zone.Zone
	}

	pie, err := newPieChart(values, labels)
	if err != nil {
		return nil, err
	}
	p.Add(pie)

	return p, nil
}

// HeatmapChart: grade ano x mês com o faturamento em milhões anotado em cada célula
func HeatmapChart(cells []domain.HeatmapCell) (*plot.Plot, error) {
	p := newPlot("Heatmap de Faturamento Mensal")
	p.X.Label.Text = "Mês"
	p.Y.Label.Text = "Ano"

	grid := newRevenueGrid(cells)
	if len(grid.years) == 0 {
		return p, nil
	}

	heatmap := newRevenueHeatMap(grid)

	var xys plotter.XYs
	var labels []string
	for r := range grid.years {
		for c := 0; c < 12; c++ {
			v := grid.Z(c, r)
			if math.IsNaN(v) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			labels = append(labels, fmt.Sprintf("%.1f", v))
		}
	}

	p.Add(heatmap)
	if len(xys) > 0 {
		annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return nil, err
		}
		for i := range annotations.TextStyle {
			annotations.TextStyle[i].XAlign = text.XCenter
			annotations.TextStyle[i].YAlign = text.YCenter
			annotations.TextStyle[i].Font.Size = vg.Points(8)
		}
		p.Add(annotations)
	}

	years := make([]string, len(grid.years))
	for i, year := range grid.years {
		years[i] = strconv.Itoa(year)
	}
	p.NominalX(monthLabels...)
	p.NominalY(years...)

	return p, nil
}

// newRevenueHeatMap mantém NaN sem cor, células sem vendas ficam em branco
func newRevenueHeatMap(grid revenueGrid) *plotter.HeatMap {
	heatmap := plotter.NewHeatMap(grid, newSequentialPalette(64))
	heatmap.Min, heatmap.Max = grid.Min(), grid.Max()
	if heatmap.Max <= heatmap.Min {
		heatmap.Max = heatmap.Min + 1
	}
	return heatmap
}

// ZoneBoxplotChart: um box por zona, na ordem da tabela de zonas, sem os outliers
func ZoneBoxplotChart(amounts []domain.TransactionAmount, zones []string) (*plot.Plot, error) {
	p := newPlot("Distribuição dos Valores por Zona")
	p.X.Label.Text = "Zona"
	p.Y.Label.Text = "Valor da Transação (Rs.)"

	if len(zones) == 0 {
		return p, nil
	}

	boxes, err := zoneBoxes(amounts, zones)
	if err != nil {
		return nil, err
	}
	for _, box := range boxes {
		p.Add(box)
	}

	p.Add(plotter.NewGrid())
	p.NominalX(zones...)
	p.X.Min = -0.5
	p.X.Max = float64(len(zones)) - 0.5

	return p, nil
}

// zoneBoxes cria um box por zona com amostras, posicionado pelo índice da zona
func zoneBoxes(amounts []domain.TransactionAmount, zones []string) ([]*plotter.BoxPlot, error) {
	var boxes []*plotter.BoxPlot
	for i, values := range analyzing.AmountsByZone(amounts, zones) {
		if len(values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(50), float64(i), plotter.Values(values))
		if err != nil {
			return nil, err
		}
		box.FillColor = colorAt(boxColors, i)
		boxes = append(boxes, box)
	}
	return boxes, nil
}

// GrowthChart: uma barra por ano colorida pelo sinal, com linha de referência no zero.
// O primeiro ano aparece como zero e sem rótulo.
func GrowthChart(years []domain.YearlySummary) (*plot.Plot, error) {
	p := newPlot("Crescimento Ano a Ano")
	p.X.Label.Text = "Ano"
	p.Y.Label.Text = "Crescimento YoY (%)"

	if len(years) == 0 {
		return p, nil
	}

	layers, err := newGrowthLayers(years)
	if err != nil {
		return nil, err
	}
	for _, bar := range layers.bars {
		p.Add(bar)
	}
	p.Add(layers.zero)

	var upXYs, downXYs plotter.XYs
	var upLabels, downLabels []string
	for i, g := range layers.growth {
		switch {
		case g > 0:
			upXYs = append(upXYs, plotter.XY{X: float64(i), Y: g})
			upLabels = append(upLabels, FormatGrowthValue(g))
		case g < 0:
			downXYs = append(downXYs, plotter.XY{X: float64(i), Y: g})
			downLabels = append(downLabels, FormatGrowthValue(g))
		}
	}

	if len(upXYs) > 0 {
		l, err := valueLabels(upXYs, upLabels, true, false)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}
	if len(downXYs) > 0 {
		l, err := valueLabels(downXYs, downLabels, true, true)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}

	p.NominalX(layers.names...)
	padGrowthRange(p, layers.growth)

	return p, nil
}

// growthLayers são as barras de crescimento e a linha de referência no zero
type growthLayers struct {
	growth []float64
	names  []string
	bars   []*plotter.BarChart
	zero   *plotter.Line
}

func newGrowthLayers(years []domain.YearlySummary) (*growthLayers, error) {
	layers := &growthLayers{
		growth: analyzing.GrowthSeries(years),
		names:  make([]string, len(years)),
	}

	for i, g := range layers.growth {
		layers.names[i] = strconv.Itoa(years[i].Year)

		bar, err := plotter.NewBarChart(plotter.Values{g}, vg.Points(40))
		if err != nil {
			return nil, err
		}
		bar.XMin = float64(i)
		bar.LineStyle.Width = 0
		bar.Color = ColorGreen
		if g < 0 {
			bar.Color = ColorRed
		}
		layers.bars = append(layers.bars, bar)
	}

	zero, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: 0}, {X: float64(len(years)) - 0.5, Y: 0}})
	if err != nil {
		return nil, err
	}
	zero.Color = ColorGray
	zero.Width = vg.Points(1)
	zero.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	layers.zero = zero

	return layers, nil
}

func sortXYs(xys plotter.XYs) {
	sort.SliceStable(xys, func(i, j int) bool { return xys[i].X < xys[j].X })
}

func padGrowthRange(p *plot.Plot, growth []float64) {
	lo, hi := 0.0, 0.0
	for _, g := range growth {
		lo = math.Min(lo, g)
		hi = math.Max(hi, g)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	p.Y.Min = lo - span*0.12
	p.Y.Max = hi + span*0.12
}

func maxValue(values plotter.Values) float64 {
	max := 0.0
	for _, v := range values {
		max = math.Max(max, v)
	}
	if max == 0 {
		return 1
	}
	return max
}
