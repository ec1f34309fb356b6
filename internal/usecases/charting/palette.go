package charting

import (
	"fmt"
	"image/color"
)

// Cores no padrão do Tableau, as mesmas usadas nos dashboards
var (
	ColorPrimary   = mustHex("#4E79A7")
	ColorSecondary = mustHex("#76B7B2")
	ColorAccent    = mustHex("#F28E2B")
	ColorRed       = mustHex("#E15759")
	ColorGreen     = mustHex("#59A14F")
	ColorGray      = mustHex("#BAB0AC")
)

var zoneColors = []color.Color{ColorPrimary, ColorSecondary, ColorAccent, ColorGreen, ColorRed, ColorGray}

// Paleta qualitativa para o boxplot
var boxColors = []color.Color{
	mustHex("#66C2A5"),
	mustHex("#FC8D62"),
	mustHex("#8DA0CB"),
	mustHex("#E78AC3"),
	mustHex("#A6D854"),
	mustHex("#FFD92F"),
}

// Amarelo -> laranja -> vermelho
var heatmapStops = []color.RGBA{
	{R: 0xFF, G: 0xFF, B: 0xCC, A: 0xFF},
	{R: 0xFE, G: 0xB2, B: 0x4C, A: 0xFF},
	{R: 0xBD, G: 0x00, B: 0x26, A: 0xFF},
}

func mustHex(hex string) color.RGBA {
	var c color.RGBA
	c.A = 0xFF
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		panic(fmt.Sprintf("charting: cor inválida %q: %v", hex, err))
	}
	return c
}

func withAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func colorAt(colors []color.Color, i int) color.Color {
	return colors[i%len(colors)]
}

// sequentialPalette implementa palette.Palette interpolando entre as cores de heatmapStops
type sequentialPalette struct {
	colors []color.Color
}

func newSequentialPalette(n int) sequentialPalette {
	colors := make([]color.Color, n)
	segments := len(heatmapStops) - 1
	for i := 0; i < n; i++ {
		pos := float64(i) / float64(n-1) * float64(segments)
		seg := int(pos)
		if seg >= segments {
			seg = segments - 1
		}
		frac := pos - float64(seg)
		from, to := heatmapStops[seg], heatmapStops[seg+1]
		colors[i] = color.RGBA{
			R: lerp(from.R, to.R, frac),
			G: lerp(from.G, to.G, frac),
			B: lerp(from.B, to.B, frac),
			A: 0xFF,
		}
	}
	return sequentialPalette{colors: colors}
}

func (p sequentialPalette) Colors() []color.Color {
	return p.colors
}

func lerp(from, to uint8, frac float64) uint8 {
	return uint8(float64(from) + (float64(to)-float64(from))*frac + 0.5)
}
