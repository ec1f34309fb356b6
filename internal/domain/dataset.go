package domain

// Dataset reúne todas as tabelas carregadas em uma execução do relatório
type Dataset struct {
	Overview  Overview
	Yearly    []YearlySummary
	Monthly   []MonthlySummary
	Markets   []MarketSummary
	Customers []CustomerSummary
	Zones     []ZoneSummary
	Heatmap   []HeatmapCell
	Amounts   []TransactionAmount
}

// ZoneNames retorna as zonas na ordem da tabela de zonas (faturamento decrescente)
func (d *Dataset) ZoneNames() []string {
	names := make([]string, 0, len(d.Zones))
	for _, zone := range d.Zones {
		names = append(names, zone.Zone)
	}
	return names
}
