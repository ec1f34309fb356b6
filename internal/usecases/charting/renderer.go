// Package charting desenha os oito gráficos do relatório em arquivos PNG
package charting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/usecases/analyzing"
	"github.com/vfg2006/sales-report/pkg/log"
)

const DPI = 150

const (
	ChartRevenueByYear    = "01_revenue_by_year.png"
	ChartMonthlyTrend     = "02_monthly_trend.png"
	ChartTopMarkets       = "03_top7_markets.png"
	ChartTopCustomers     = "04_top5_customers.png"
	ChartZoneDistribution = "05_zone_distribution.png"
	ChartMonthlyHeatmap   = "06_monthly_heatmap.png"
	ChartZoneBoxplot      = "07_zone_boxplot.png"
	ChartYoYGrowth        = "08_yoy_growth.png"
)

type chartSpec struct {
	file   string
	width  vg.Length
	height vg.Length
	build  func(*analyzing.Analysis) (*plot.Plot, error)
}

// Ordem fixa de geração, a mesma usada nas mensagens de progresso
var charts = []chartSpec{
	{ChartRevenueByYear, 10 * vg.Inch, 6 * vg.Inch, func(a *analyzing.Analysis) (*plot.Plot, error) {
		return RevenueByYearChart(a.Dataset.Yearly)
	}},
	{ChartMonthlyTrend, 14 * vg.Inch, 6 * vg.Inch, func(a *analyzing.Analysis) (*plot.Plot, error) {
		return MonthlyTrendChart(a.Dataset.Monthly)
	}},
	{ChartTopMarkets, 10 * vg.Inch, 8 * vg.Inch, func(a *analyzing.Analysis) (*plot.Plot, error) {
		return TopMarketsChart(a.ChartMarkets)
	}},
	{ChartTopCustomers, 10 * vg.Inch, 6 * vg.Inch, func(a *analyzing.Analysis) (*plot.Plot, error) {
		return TopCustomersChart(a.ChartCustomers)
	}},
	{ChartZoneDistribution, 8 * vg.Inch, 8 * vg.Inch, func(a *analyzing.Analysis) (*plot.Plot, error) {
		return ZoneDistributionChart(a.Dataset.Zones)
	}},
	{ChartMonthlyHeatmap, 12 * vg.Inch, 6 * vg.Inch, func(a *analyzing.Analysis) (*plot.Plot, error) {
		return HeatmapChart(a.Dataset.Heatmap)
	}},
	{ChartZoneBoxplot, 10 * vg.Inch, 6 * vg.Inch, func(a *analyzing.Analysis) (*plot.Plot, error) {
		return ZoneBoxplotChart(a.BoxplotAmounts, a.Dataset.ZoneNames())
	}},
	{ChartYoYGrowth, 10 * vg.Inch, 6 * vg.Inch, func(a *analyzing.Analysis) (*plot.Plot, error) {
		return GrowthChart(a.Dataset.Yearly)
	}},
}

// ChartFiles lista os nomes dos arquivos na ordem de geração
func ChartFiles() []string {
	files := make([]string, len(charts))
	for i, c := range charts {
		files[i] = c.file
	}
	return files
}

type Renderer struct {
	dir string
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

func (r *Renderer) Dir() string {
	return r.dir
}

// RenderAll cria o diretório de gráficos e grava os oito PNGs em ordem.
// Retorna os caminhos gravados; o primeiro erro interrompe a geração.
func (r *Renderer) RenderAll(ctx context.Context, analysis *analyzing.Analysis) ([]string, error) {
	return r.RenderEach(ctx, analysis, nil)
}

// RenderEach funciona como RenderAll e chama onSaved após cada arquivo gravado
func (r *Renderer) RenderEach(ctx context.Context, analysis *analyzing.Analysis, onSaved func(path string)) ([]string, error) {
	logger := log.ForContext(ctx).WithStage(domain.StageRender)

	if analysis == nil || analysis.Dataset == nil {
		return nil, domain.NewRenderError("", fmt.Errorf("análise vazia"))
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, domain.NewRenderError(r.dir, err)
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		if err := ctx.Err(); err != nil {
			return paths, domain.NewRenderError(c.file, err)
		}

		path := filepath.Join(r.dir, c.file)
		if err := renderChart(c, analysis, path); err != nil {
			logger.WithField("chart", c.file).WithError(err).Error("Erro ao gerar gráfico")
			return paths, err
		}

		logger.WithField("chart", c.file).Debug("Gráfico salvo")
		paths = append(paths, path)
		if onSaved != nil {
			onSaved(path)
		}
	}

	return paths, nil
}

// renderChart protege contra panics do gonum/plot (ex.: dados degenerados)
func renderChart(c chartSpec, analysis *analyzing.Analysis, path string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = domain.NewRenderError(c.file, fmt.Errorf("panic: %v", rec))
		}
	}()

	p, err := c.build(analysis)
	if err != nil {
		return domain.NewRenderError(c.file, err)
	}

	if err := savePNG(p, c.width, c.height, path); err != nil {
		return domain.NewRenderError(c.file, err)
	}
	return nil
}

func savePNG(p *plot.Plot, width, height vg.Length, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(DPI))
	p.Draw(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
