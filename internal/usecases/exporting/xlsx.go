package exporting

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/sales-report/internal/usecases/analyzing"
)

const WorkbookFile = "sales_analysis.xlsx"

const (
	sheetMarkets   = "markets"
	sheetCustomers = "customers"
	sheetYearly    = "yearly"
	sheetZones     = "zones"
)

var zonesHeader = []string{"zone", "markets", "revenue", "quantity", "pct"}

// BuildWorkbook monta a planilha com uma aba por tabela. Valores numéricos são
// gravados como número para permitir filtros e somas no Excel.
func BuildWorkbook(analysis *analyzing.Analysis) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetMarkets); err != nil {
		return nil, err
	}
	for _, sheet := range []string{sheetCustomers, sheetYearly, sheetZones} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4E79A7"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	dataset := analysis.Dataset

	markets := make([][]interface{}, 0, len(dataset.Markets))
	for _, m := range dataset.Markets {
		markets = append(markets, []interface{}{m.Market, m.Zone, m.Revenue, m.Quantity, m.Transactions, m.PctOfTotal})
	}

	customers := make([][]interface{}, 0, len(dataset.Customers))
	for _, c := range dataset.Customers {
		customers = append(customers, []interface{}{c.Customer, c.CustomerType, c.Revenue, c.Quantity, c.Transactions, c.PctOfTotal})
	}

	yearly := make([][]interface{}, 0, len(dataset.Yearly))
	for _, y := range dataset.Yearly {
		var growth interface{}
		if y.YoYGrowth != nil {
			growth = *y.YoYGrowth
		}
		yearly = append(yearly, []interface{}{y.Year, y.Revenue, y.Quantity, y.Transactions, growth})
	}

	zones := make([][]interface{}, 0, len(dataset.Zones))
	for _, z := range dataset.Zones {
		zones = append(zones, []interface{}{z.Zone, z.Markets, z.Revenue, z.Quantity, z.PctOfTotal})
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]interface{}
	}{
		{sheetMarkets, marketsHeader, markets},
		{sheetCustomers, customersHeader, customers},
		{sheetYearly, yearlyHeader, yearly},
		{sheetZones, zonesHeader, zones},
	}

	for _, sheet := range sheets {
		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows, headerStyle); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet.name, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}, headerStyle int) error {
	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(header))
	return f.SetColWidth(sheet, "A", lastCol, 18)
}
