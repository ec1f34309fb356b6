package charting

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// pieChart desenha um gráfico de pizza ocupando toda a área do plot.
// As fatias seguem no sentido anti-horário a partir de 90 graus.
type pieChart struct {
	Values []float64
	Labels []string
	Colors []color.Color

	// Explode é o índice da fatia deslocada para fora do centro (-1 para nenhuma)
	Explode       int
	ExplodeOffset float64 // fração do raio
}

func newPieChart(values []float64, labels []string) (*pieChart, error) {
	if len(values) != len(labels) {
		return nil, fmt.Errorf("charting: %d valores para %d rótulos", len(values), len(labels))
	}
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("charting: valor inválido para pizza: %v", v)
		}
	}

	return &pieChart{
		Values:        values,
		Labels:        labels,
		Colors:        zoneColors,
		Explode:       0,
		ExplodeOffset: 0.05,
	}, nil
}

// Plot implementa plot.Plotter
func (pc *pieChart) Plot(c draw.Canvas, plt *plot.Plot) {
	total := 0.0
	for _, v := range pc.Values {
		total += v
	}
	if total == 0 {
		return
	}

	width := c.Max.X - c.Min.X
	height := c.Max.Y - c.Min.Y
	radius := 0.75 * math.Min(float64(width), float64(height)) / 2
	center := c.Center()

	sty := plt.X.Tick.Label
	sty.Rotation = 0
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter

	angle := math.Pi / 2
	for i, v := range pc.Values {
		sweep := v / total * 2 * math.Pi
		mid := angle + sweep/2

		origin := center
		if i == pc.Explode {
			origin = polar(center, radius*pc.ExplodeOffset, mid)
		}

		var path vg.Path
		path.Move(origin)
		path.Arc(origin, vg.Length(radius), angle, sweep)
		path.Close()

		c.SetColor(colorAt(pc.Colors, i))
		c.Fill(path)

		pct := v / total * 100
		c.FillText(sty, polar(origin, radius*0.6, mid), fmt.Sprintf("%.1f%%", pct))
		c.FillText(sty, polar(origin, radius*1.12, mid), pc.Labels[i])

		angle += sweep
	}
}

func polar(origin vg.Point, r, theta float64) vg.Point {
	return vg.Point{
		X: origin.X + vg.Length(r*math.Cos(theta)),
		Y: origin.Y + vg.Length(r*math.Sin(theta)),
	}
}
