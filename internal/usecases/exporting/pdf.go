package exporting

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/vfg2006/sales-report/internal/usecases/analyzing"
	"github.com/vfg2006/sales-report/internal/usecases/reporting"
)

const SummaryPDFFile = "sales_report.pdf"

// BuildSummaryPDF gera um resumo com os números gerais, as tabelas de ano e zona
// e uma página por gráfico. Os gráficos precisam existir em disco.
func BuildSummaryPDF(analysis *analyzing.Analysis, charts []string, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// As fontes padrão usam cp1252; os acentos passam pelo tradutor
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Relatório de Vendas"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 5, fmt.Sprintf("Gerado em: %s", generatedAt.Format("2006-01-02 15:04:05")))
	pdf.Ln(8)

	overview := analysis.Dataset.Overview
	lines := []string{
		fmt.Sprintf("Total de transações: %s", reporting.FormatInt(overview.TotalTransactions)),
		fmt.Sprintf("Faturamento total: %s", reporting.FormatMillions(overview.TotalRevenue)),
		fmt.Sprintf("Quantidade total: %s", reporting.FormatInt(overview.TotalQuantity)),
		fmt.Sprintf("Clientes únicos: %d", overview.UniqueCustomers),
		fmt.Sprintf("Mercados únicos: %d", overview.UniqueMarkets),
		fmt.Sprintf("Período: %s a %s", reporting.FormatDate(overview.StartDate), reporting.FormatDate(overview.EndDate)),
		fmt.Sprintf("Top 3 mercados: %s do faturamento", reporting.FormatPercent(analysis.MarketConcentration)),
		fmt.Sprintf("Top 5 clientes: %s do faturamento", reporting.FormatPercent(analysis.CustomerConcentration)),
	}

	pdf.SetFont("Arial", "", 10)
	for _, line := range lines {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(5)
	}
	pdf.Ln(6)

	// Faturamento por ano
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(0x4E, 0x79, 0xA7)
	pdf.SetTextColor(255, 255, 255)
	for _, header := range []string{"Ano", "Faturamento", "Crescimento YoY"} {
		pdf.CellFormat(50, 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
	for _, year := range analysis.Dataset.Yearly {
		growth := "-"
		if year.YoYGrowth != nil {
			growth = reporting.FormatSignedPercent(*year.YoYGrowth)
		}
		pdf.CellFormat(50, 6, fmt.Sprint(year.Year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, reporting.FormatMillions(year.Revenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, growth, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	// Faturamento por zona
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(255, 255, 255)
	for _, header := range []string{"Zona", "Mercados", "Faturamento", "Participação"} {
		pdf.CellFormat(40, 7, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
	for _, zone := range analysis.Dataset.Zones {
		pdf.CellFormat(40, 6, tr(zone.Zone), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprint(zone.Markets), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, reporting.FormatMillions(zone.Revenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, reporting.FormatPercent(zone.PctOfTotal), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usableWidth := pageWidth - left - right

	for _, chart := range charts {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, filepath.Base(chart))
		pdf.Ln(10)
		pdf.ImageOptions(chart, left, pdf.GetY(), usableWidth, 0, false,
			gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
