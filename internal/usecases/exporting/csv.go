package exporting

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vfg2006/sales-report/internal/domain"
)

const (
	MarketsCSV   = "market_analysis.csv"
	CustomersCSV = "customer_analysis.csv"
	YearlyCSV    = "yearly_analysis.csv"
)

var (
	marketsHeader   = []string{"market", "zone", "revenue", "quantity", "transactions", "pct"}
	customersHeader = []string{"customer", "customer_type", "revenue", "quantity", "transactions", "pct"}
	yearlyHeader    = []string{"year", "revenue", "quantity", "transactions", "yoy_growth"}
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatGrowth deixa a célula vazia quando não há ano anterior
func formatGrowth(growth *float64) string {
	if growth == nil {
		return ""
	}
	return formatFloat(*growth)
}

func marketRows(markets []domain.MarketSummary) [][]string {
	rows := make([][]string, 0, len(markets)+1)
	rows = append(rows, marketsHeader)
	for _, m := range markets {
		rows = append(rows, []string{
			m.Market,
			m.Zone,
			formatFloat(m.Revenue),
			formatInt(m.Quantity),
			formatInt(m.Transactions),
			formatFloat(m.PctOfTotal),
		})
	}
	return rows
}

func customerRows(customers []domain.CustomerSummary) [][]string {
	rows := make([][]string, 0, len(customers)+1)
	rows = append(rows, customersHeader)
	for _, c := range customers {
		rows = append(rows, []string{
			c.Customer,
			c.CustomerType,
			formatFloat(c.Revenue),
			formatInt(c.Quantity),
			formatInt(c.Transactions),
			formatFloat(c.PctOfTotal),
		})
	}
	return rows
}

func yearlyRows(years []domain.YearlySummary) [][]string {
	rows := make([][]string, 0, len(years)+1)
	rows = append(rows, yearlyHeader)
	for _, y := range years {
		rows = append(rows, []string{
			strconv.Itoa(y.Year),
			formatFloat(y.Revenue),
			formatInt(y.Quantity),
			formatInt(y.Transactions),
			formatGrowth(y.YoYGrowth),
		})
	}
	return rows
}

func writeCSV(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

// writeCSVFile grava a tabela em dir/name; qualquer falha vira ExportError
func writeCSVFile(dir, name string, rows [][]string) (string, error) {
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", domain.NewExportError(name, err)
	}

	if err := writeCSV(f, rows); err != nil {
		f.Close()
		return "", domain.NewExportError(name, err)
	}

	if err := f.Close(); err != nil {
		return "", domain.NewExportError(name, err)
	}
	return path, nil
}
