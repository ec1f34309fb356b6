package domain

// YearlySummary agrega o faturamento por ano calendário
type YearlySummary struct {
	Year         int     `json:"year"`
	Revenue      float64 `json:"revenue"`
	Quantity     int64   `json:"quantity"`
	Transactions int64   `json:"transactions"`
	// YoYGrowth é nil quando não existe ano anterior comparável
	YoYGrowth *float64 `json:"yoy_growth,omitempty"`
}

type MonthlySummary struct {
	Year     int     `json:"year"`
	Month    string  `json:"month"`
	MonthNum int     `json:"month_num"`
	Revenue  float64 `json:"revenue"`
}

type HeatmapCell struct {
	Year     int     `json:"year"`
	MonthNum int     `json:"month_num"`
	Revenue  float64 `json:"revenue"`
}
