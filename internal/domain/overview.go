// Package domain contém as estruturas de dados do relatório de vendas
package domain

import "time"

// Overview é a linha única com os totais gerais da base de transações
type Overview struct {
	TotalTransactions int64     `json:"total_transactions"`
	TotalRevenue      float64   `json:"total_revenue"`
	TotalQuantity     int64     `json:"total_quantity"`
	UniqueCustomers   int64     `json:"unique_customers"`
	UniqueMarkets     int64     `json:"unique_markets"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
}
