// Package repository contém as consultas agregadas da base de vendas
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-report/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report/internal/domain"
)

const (
	transactionsTable = "transactions t"
	dateJoin          = `"date" d ON t.order_date = d.date`
	marketsJoin       = "markets m ON t.market_code = m.markets_code"
	customersJoin     = "customers c ON t.customer_code = c.customer_code"

	monthNumExpr = "CAST(EXTRACT(MONTH FROM d.date) AS INTEGER)"
)

// Nomes das consultas, usados nos logs e nos erros
const (
	QueryOverview  = "overview"
	QueryYearly    = "yearly"
	QueryMonthly   = "monthly"
	QueryMarkets   = "markets"
	QueryCustomers = "customers"
	QueryZones     = "zones"
	QueryHeatmap   = "heatmap"
	QueryAmounts   = "boxplot"
)

//go:generate mockgen -source=sales_analytics.go -destination=mocks/sales_analytics.go -package=mocks

type SalesAnalyticsRepository interface {
	GetOverview(ctx context.Context) (*domain.Overview, error)
	GetYearly(ctx context.Context) ([]domain.YearlySummary, error)
	GetMonthly(ctx context.Context) ([]domain.MonthlySummary, error)
	GetMarkets(ctx context.Context) ([]domain.MarketSummary, error)
	GetCustomers(ctx context.Context) ([]domain.CustomerSummary, error)
	GetZones(ctx context.Context) ([]domain.ZoneSummary, error)
	GetHeatmap(ctx context.Context) ([]domain.HeatmapCell, error)
	GetTransactionAmounts(ctx context.Context) ([]domain.TransactionAmount, error)
}

type salesAnalyticsRepository struct {
	conn   postgres.Queryer
	policy domain.CurrencyPolicy
}

func NewSalesAnalyticsRepository(conn postgres.Queryer, policy domain.CurrencyPolicy) SalesAnalyticsRepository {
	return &salesAnalyticsRepository{
		conn:   conn,
		policy: policy,
	}
}

// normalizedAmount devolve a expressão que converte o valor da moeda secundária.
// Os dois placeholders recebem a moeda e a taxa, nessa ordem.
func normalizedAmount(alias string) string {
	return fmt.Sprintf(
		"CASE WHEN %[1]s.currency = ? THEN %[1]s.sales_amount * CAST(? AS NUMERIC) ELSE %[1]s.sales_amount END",
		alias,
	)
}

func (r *salesAnalyticsRepository) currencyArgs() []interface{} {
	return []interface{}{r.policy.SecondaryCurrency, r.policy.ConversionRate}
}

func (r *salesAnalyticsRepository) revenueColumn(alias string) (string, []interface{}) {
	return fmt.Sprintf("COALESCE(SUM(%s), 0) AS %s", normalizedAmount("t"), alias), r.currencyArgs()
}

func (r *salesAnalyticsRepository) overviewQuery() squirrel.SelectBuilder {
	revenue, args := r.revenueColumn("total_revenue")
	return squirrel.
		Select("COUNT(*) AS total_transactions").
		Column(revenue, args...).
		Columns(
			"COALESCE(SUM(t.sales_qty), 0) AS total_quantity",
			"COUNT(DISTINCT t.customer_code) AS unique_customers",
			"COUNT(DISTINCT t.market_code) AS unique_markets",
			"MIN(t.order_date) AS start_date",
			"MAX(t.order_date) AS end_date",
		).
		From(transactionsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesAnalyticsRepository) yearlyQuery() squirrel.SelectBuilder {
	revenue, args := r.revenueColumn("revenue")
	return squirrel.
		Select("d.year").
		Column(revenue, args...).
		Columns(
			"COALESCE(SUM(t.sales_qty), 0) AS quantity",
			"COUNT(*) AS transactions",
		).
		From(transactionsTable).
		InnerJoin(dateJoin).
		GroupBy("d.year").
		OrderBy("d.year ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesAnalyticsRepository) monthlyQuery() squirrel.SelectBuilder {
	revenue, args := r.revenueColumn("revenue")
	return squirrel.
		Select("d.year", "d.month_name AS month", monthNumExpr+" AS month_num").
		Column(revenue, args...).
		From(transactionsTable).
		InnerJoin(dateJoin).
		GroupBy("d.year", "d.month_name", monthNumExpr).
		OrderBy("d.year ASC", "month_num ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesAnalyticsRepository) marketsQuery() squirrel.SelectBuilder {
	revenue, args := r.revenueColumn("revenue")
	return squirrel.
		Select("m.markets_name AS market", "m.zone").
		Column(revenue, args...).
		Columns(
			"COALESCE(SUM(t.sales_qty), 0) AS quantity",
			"COUNT(*) AS transactions",
		).
		From(transactionsTable).
		InnerJoin(marketsJoin).
		GroupBy("m.markets_name", "m.zone").
		OrderBy("revenue DESC", "market ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesAnalyticsRepository) customersQuery() squirrel.SelectBuilder {
	revenue, args := r.revenueColumn("revenue")
	return squirrel.
		Select("c.custmer_name AS customer", "c.customer_type").
		Column(revenue, args...).
		Columns(
			"COALESCE(SUM(t.sales_qty), 0) AS quantity",
			"COUNT(*) AS transactions",
		).
		From(transactionsTable).
		InnerJoin(customersJoin).
		GroupBy("c.custmer_name", "c.customer_type").
		OrderBy("revenue DESC", "customer ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesAnalyticsRepository) zonesQuery() squirrel.SelectBuilder {
	revenue, args := r.revenueColumn("revenue")
	return squirrel.
		Select("m.zone", "COUNT(DISTINCT m.markets_code) AS n_markets").
		Column(revenue, args...).
		Column("COALESCE(SUM(t.sales_qty), 0) AS quantity").
		From(transactionsTable).
		InnerJoin(marketsJoin).
		GroupBy("m.zone").
		OrderBy("revenue DESC", "m.zone ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesAnalyticsRepository) heatmapQuery() squirrel.SelectBuilder {
	revenue, args := r.revenueColumn("revenue")
	return squirrel.
		Select("d.year", monthNumExpr+" AS month_num").
		Column(revenue, args...).
		From(transactionsTable).
		InnerJoin(dateJoin).
		GroupBy("d.year", monthNumExpr).
		OrderBy("d.year ASC", "month_num ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesAnalyticsRepository) amountsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("m.zone").
		Column(normalizedAmount("t")+" AS amount", r.currencyArgs()...).
		From(transactionsTable).
		InnerJoin(marketsJoin).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *salesAnalyticsRepository) GetOverview(ctx context.Context) (*domain.Overview, error) {
	query, args, err := r.overviewQuery().ToSql()
	if err != nil {
		return nil, domain.NewQueryError(QueryOverview, fmt.Errorf("erro ao construir a query: %w", err))
	}

	overview := &domain.Overview{}
	var startDate, endDate sql.NullTime

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&overview.TotalTransactions,
		&overview.TotalRevenue,
		&overview.TotalQuantity,
		&overview.UniqueCustomers,
		&overview.UniqueMarkets,
		&startDate,
		&endDate,
	)
	if err != nil {
		return nil, domain.NewQueryError(QueryOverview, wrapDatabaseError(err))
	}

	overview.StartDate = startDate.Time
	overview.EndDate = endDate.Time

	return overview, nil
}

func (r *salesAnalyticsRepository) GetYearly(ctx context.Context) ([]domain.YearlySummary, error) {
	return selectAll(ctx, r.conn, QueryYearly, r.yearlyQuery(), func(rows *sql.Rows) (domain.YearlySummary, error) {
		item := domain.YearlySummary{}
		err := rows.Scan(&item.Year, &item.Revenue, &item.Quantity, &item.Transactions)
		return item, err
	})
}

func (r *salesAnalyticsRepository) GetMonthly(ctx context.Context) ([]domain.MonthlySummary, error) {
	return selectAll(ctx, r.conn, QueryMonthly, r.monthlyQuery(), func(rows *sql.Rows) (domain.MonthlySummary, error) {
		item := domain.MonthlySummary{}
		err := rows.Scan(&item.Year, &item.Month, &item.MonthNum, &item.Revenue)
		return item, err
	})
}

func (r *salesAnalyticsRepository) GetMarkets(ctx context.Context) ([]domain.MarketSummary, error) {
	return selectAll(ctx, r.conn, QueryMarkets, r.marketsQuery(), func(rows *sql.Rows) (domain.MarketSummary, error) {
		item := domain.MarketSummary{}
		err := rows.Scan(&item.Market, &item.Zone, &item.Revenue, &item.Quantity, &item.Transactions)
		return item, err
	})
}

func (r *salesAnalyticsRepository) GetCustomers(ctx context.Context) ([]domain.CustomerSummary, error) {
	return selectAll(ctx, r.conn, QueryCustomers, r.customersQuery(), func(rows *sql.Rows) (domain.CustomerSummary, error) {
		item := domain.CustomerSummary{}
		err := rows.Scan(&item.Customer, &item.CustomerType, &item.Revenue, &item.Quantity, &item.Transactions)
		return item, err
	})
}

func (r *salesAnalyticsRepository) GetZones(ctx context.Context) ([]domain.ZoneSummary, error) {
	return selectAll(ctx, r.conn, QueryZones, r.zonesQuery(), func(rows *sql.Rows) (domain.ZoneSummary, error) {
		item := domain.ZoneSummary{}
		err := rows.Scan(&item.Zone, &item.Markets, &item.Revenue, &item.Quantity)
		return item, err
	})
}

func (r *salesAnalyticsRepository) GetHeatmap(ctx context.Context) ([]domain.HeatmapCell, error) {
	return selectAll(ctx, r.conn, QueryHeatmap, r.heatmapQuery(), func(rows *sql.Rows) (domain.HeatmapCell, error) {
		item := domain.HeatmapCell{}
		err := rows.Scan(&item.Year, &item.MonthNum, &item.Revenue)
		return item, err
	})
}

func (r *salesAnalyticsRepository) GetTransactionAmounts(ctx context.Context) ([]domain.TransactionAmount, error) {
	return selectAll(ctx, r.conn, QueryAmounts, r.amountsQuery(), func(rows *sql.Rows) (domain.TransactionAmount, error) {
		item := domain.TransactionAmount{}
		err := rows.Scan(&item.Zone, &item.Amount)
		return item, err
	})
}

// selectAll executa a consulta e escaneia todas as linhas com scan
func selectAll[T any](
	ctx context.Context,
	conn postgres.Queryer,
	name string,
	builder squirrel.SelectBuilder,
	scan func(*sql.Rows) (T, error),
) ([]T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, domain.NewQueryError(name, fmt.Errorf("erro ao construir a query: %w", err))
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewQueryError(name, wrapDatabaseError(err))
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, domain.NewQueryError(name, fmt.Errorf("erro ao escanear linha: %w", err))
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, domain.NewQueryError(name, fmt.Errorf("erro durante a iteração de linhas: %w", err))
	}

	return items, nil
}

func wrapDatabaseError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
