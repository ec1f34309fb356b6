package domain

type MarketSummary struct {
	Market       string  `json:"market"`
	Zone         string  `json:"zone"`
	Revenue      float64 `json:"revenue"`
	Quantity     int64   `json:"quantity"`
	Transactions int64   `json:"transactions"`
	PctOfTotal   float64 `json:"pct"`
}

type CustomerSummary struct {
	Customer     string  `json:"customer"`
	CustomerType string  `json:"customer_type"`
	Revenue      float64 `json:"revenue"`
	Quantity     int64   `json:"quantity"`
	Transactions int64   `json:"transactions"`
	PctOfTotal   float64 `json:"pct"`
}

type ZoneSummary struct {
	Zone       string  `json:"zone"`
	Markets    int64   `json:"n_markets"`
	Revenue    float64 `json:"revenue"`
	Quantity   int64   `json:"quantity"`
	PctOfTotal float64 `json:"pct"`
}

// TransactionAmount é a única consulta não agregada: uma linha por transação
type TransactionAmount struct {
	Zone   string  `json:"zone"`
	Amount float64 `json:"amount"`
}
