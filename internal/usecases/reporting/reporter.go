// Package reporting imprime o relatório de métricas no console
package reporting

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vfg2006/sales-report/internal/usecases/analyzing"
)

type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Write imprime o relatório na ordem fixa: visão geral, faturamento anual,
// crescimento, top mercados, top clientes, zonas e concentração
func (r *Reporter) Write(analysis *analyzing.Analysis) error {
	w := bufio.NewWriter(r.out)

	sections := []func(*bufio.Writer, *analyzing.Analysis){
		writeOverview,
		writeYearly,
		writeGrowth,
		writeTopMarkets,
		writeTopCustomers,
		writeZones,
		writeConcentration,
	}
	for _, section := range sections {
		section(w, analysis)
		fmt.Fprintln(w)
	}

	return w.Flush()
}

func writeOverview(w *bufio.Writer, analysis *analyzing.Analysis) {
	overview := analysis.Dataset.Overview

	fmt.Fprintln(w, "MÉTRICAS GERAIS:")
	fmt.Fprintf(w, "   Transações totais:     %s\n", FormatInt(overview.TotalTransactions))
	fmt.Fprintf(w, "   Faturamento total:     %s\n", FormatMillions(overview.TotalRevenue))
	fmt.Fprintf(w, "   Quantidade vendida:    %s unidades\n", FormatInt(overview.TotalQuantity))
	fmt.Fprintf(w, "   Clientes únicos:       %d\n", overview.UniqueCustomers)
	fmt.Fprintf(w, "   Mercados:              %d\n", overview.UniqueMarkets)
	fmt.Fprintf(w, "   Período:               %s - %s\n", FormatDate(overview.StartDate), FormatDate(overview.EndDate))
}

func writeYearly(w *bufio.Writer, analysis *analyzing.Analysis) {
	fmt.Fprintln(w, "FATURAMENTO POR ANO:")
	for _, year := range analysis.Dataset.Yearly {
		fmt.Fprintf(w, "   %d: %s (%s transações)\n", year.Year, FormatMillions(year.Revenue), FormatInt(year.Transactions))
	}
}

func writeGrowth(w *bufio.Writer, analysis *analyzing.Analysis) {
	fmt.Fprintln(w, "CRESCIMENTO YoY:")
	for _, year := range analysis.Dataset.Yearly {
		if year.YoYGrowth == nil {
			continue
		}
		fmt.Fprintf(w, "   %d: %s\n", year.Year, FormatSignedPercent(*year.YoYGrowth))
	}
}

func writeTopMarkets(w *bufio.Writer, analysis *analyzing.Analysis) {
	fmt.Fprintf(w, "TOP %d MERCADOS:\n", analyzing.ReportTopMarkets)
	for i, market := range analysis.ReportMarkets {
		fmt.Fprintf(w, "   %d. %s: %s (%s)\n", i+1, market.Market, FormatMillions(market.Revenue), FormatPercent(market.PctOfTotal))
	}
}

func writeTopCustomers(w *bufio.Writer, analysis *analyzing.Analysis) {
	fmt.Fprintf(w, "TOP %d CLIENTES:\n", analyzing.ReportTopCustomers)
	for i, customer := range analysis.ReportCustomers {
		fmt.Fprintf(w, "   %d. %s: %s (%s)\n", i+1, customer.Customer, FormatMillions(customer.Revenue), FormatPercent(customer.PctOfTotal))
	}
}

func writeZones(w *bufio.Writer, analysis *analyzing.Analysis) {
	fmt.Fprintln(w, "FATURAMENTO POR ZONA:")
	for _, zone := range analysis.Dataset.Zones {
		fmt.Fprintf(w, "   %s: %s (%s) - %d mercados\n", zone.Zone, FormatMillions(zone.Revenue), FormatPercent(zone.PctOfTotal), zone.Markets)
	}
}

func writeConcentration(w *bufio.Writer, analysis *analyzing.Analysis) {
	fmt.Fprintln(w, "CONCENTRAÇÃO (riscos):")
	fmt.Fprintf(w, "   Top %d mercados: %s do faturamento\n", analyzing.ConcentrationTopMarkets, FormatPercent(analysis.MarketConcentration))
	fmt.Fprintf(w, "   Top %d clientes: %s do faturamento\n", analyzing.ConcentrationTopCustomers, FormatPercent(analysis.CustomerConcentration))
}
