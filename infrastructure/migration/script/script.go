package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report/internal/config"
)

const (
	seed      = 20171004
	firstYear = 2017
	lastYear  = 2020
	batchSize = 500
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS "date" (
		date        DATE PRIMARY KEY,
		cy_date     DATE NOT NULL,
		year        INTEGER NOT NULL,
		month_name  VARCHAR(16) NOT NULL,
		date_yy_mmm VARCHAR(16) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS markets (
		markets_code VARCHAR(16) PRIMARY KEY,
		markets_name VARCHAR(64) NOT NULL,
		zone         VARCHAR(32) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_code VARCHAR(16) PRIMARY KEY,
		custmer_name  VARCHAR(128) NOT NULL,
		customer_type VARCHAR(32) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		product_code  VARCHAR(16) NOT NULL,
		customer_code VARCHAR(16) NOT NULL REFERENCES customers (customer_code),
		market_code   VARCHAR(16) NOT NULL REFERENCES markets (markets_code),
		order_date    DATE NOT NULL REFERENCES "date" (date),
		sales_qty     INTEGER NOT NULL,
		sales_amount  NUMERIC(14, 2) NOT NULL,
		currency      VARCHAR(8) NOT NULL
	)`,
}

type Market struct {
	Code string
	Name string
	Zone string
}

type Customer struct {
	Code string
	Name string
	Type string
}

type Transaction struct {
	ProductCode  string
	CustomerCode string
	MarketCode   string
	OrderDate    time.Time
	Quantity     int
	Amount       float64
	Currency     string
}

var markets = []Market{
	{"Mark001", "Chennai", "South"},
	{"Mark002", "Mumbai", "Central"},
	{"Mark003", "Ahmedabad", "North"},
	{"Mark004", "Delhi NCR", "North"},
	{"Mark005", "Kanpur", "North"},
	{"Mark006", "Bengaluru", "South"},
	{"Mark007", "Bhopal", "Central"},
	{"Mark008", "Lucknow", "North"},
	{"Mark009", "Patna", "North"},
	{"Mark010", "Kochi", "South"},
	{"Mark011", "Nagpur", "Central"},
	{"Mark012", "Surat", "North"},
	{"Mark013", "Hyderabad", "South"},
	{"Mark014", "Bhubaneshwar", "South"},
}

var customers = []Customer{
	{"Cus001", "Surge Stores", "Brick & Mortar"},
	{"Cus002", "Nomad Stores", "Brick & Mortar"},
	{"Cus003", "Excel Stores", "Brick & Mortar"},
	{"Cus004", "Surface Stores", "Brick & Mortar"},
	{"Cus005", "Premium Stores", "Brick & Mortar"},
	{"Cus006", "Electricalsara Stores", "Brick & Mortar"},
	{"Cus007", "Info Stores", "Brick & Mortar"},
	{"Cus008", "Acclaimed Stores", "Brick & Mortar"},
	{"Cus009", "Electricalsopedia", "E-Commerce"},
	{"Cus010", "Atliq e Store", "E-Commerce"},
	{"Cus011", "Nixon", "E-Commerce"},
	{"Cus012", "Propel", "E-Commerce"},
}

// GenerateDates cria a dimensão de datas com um dia por linha entre os anos informados
func GenerateDates(from, to int) []time.Time {
	start := time.Date(from, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to+1, 1, 1, 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// GenerateTransactions gera as vendas de forma determinística a partir da semente.
// Uma parte das vendas é registrada em USD, como na base original.
func GenerateTransactions(rng *rand.Rand, dates []time.Time) []Transaction {
	var transactions []Transaction
	for _, date := range dates {
		// Menos vendas nos fins de semana
		perDay := 3 + rng.Intn(4)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			perDay = 1 + rng.Intn(2)
		}

		for i := 0; i < perDay; i++ {
			// Mercados e clientes do começo da lista vendem mais
			market := markets[skewedIndex(rng, len(markets))]
			customer := customers[skewedIndex(rng, len(customers))]

			quantity := 1 + rng.Intn(20)
			unitPrice := 500 + rng.Float64()*4500
			amount := float64(quantity) * unitPrice
			currency := "INR"
			if rng.Intn(100) < 3 {
				currency = "USD"
				amount /= 74
			}
			// Pedidos de atacado ocasionais formam a cauda do boxplot
			if rng.Intn(500) == 0 {
				amount *= 25
			}

			transactions = append(transactions, Transaction{
				ProductCode:  fmt.Sprintf("Prod%03d", 1+rng.Intn(300)),
				CustomerCode: customer.Code,
				MarketCode:   market.Code,
				OrderDate:    date,
				Quantity:     quantity,
				Amount:       float64(int64(amount*100)) / 100,
				Currency:     currency,
			})
		}
	}
	return transactions
}

func skewedIndex(rng *rand.Rand, n int) int {
	a, b := rng.Intn(n), rng.Intn(n)
	if a < b {
		return a
	}
	return b
}

func createSchema(ctx context.Context, conn postgres.Conn) error {
	for _, stmt := range schema {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func insertDates(ctx context.Context, conn postgres.Conn, dates []time.Time) error {
	logrus.Infof("Iniciando inserção de %d datas...", len(dates))

	for start := 0; start < len(dates); start += batchSize {
		end := min(start+batchSize, len(dates))

		query := squirrel.Insert(`"date"`).
			Columns("date", "cy_date", "year", "month_name", "date_yy_mmm").
			Suffix("ON CONFLICT (date) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar)
		for _, d := range dates[start:end] {
			monthStart := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
			query = query.Values(d, monthStart, d.Year(), d.Month().String(), d.Format("06-Jan"))
		}

		if err := execInsert(ctx, conn, query); err != nil {
			return err
		}
	}
	return nil
}

func insertMarkets(ctx context.Context, conn postgres.Conn) error {
	query := squirrel.Insert("markets").
		Columns("markets_code", "markets_name", "zone").
		Suffix("ON CONFLICT (markets_code) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
	for _, m := range markets {
		query = query.Values(m.Code, m.Name, m.Zone)
	}
	return execInsert(ctx, conn, query)
}

func insertCustomers(ctx context.Context, conn postgres.Conn) error {
	query := squirrel.Insert("customers").
		Columns("customer_code", "custmer_name", "customer_type").
		Suffix("ON CONFLICT (customer_code) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
	for _, c := range customers {
		query = query.Values(c.Code, c.Name, c.Type)
	}
	return execInsert(ctx, conn, query)
}

func insertTransactions(ctx context.Context, conn postgres.Conn, transactions []Transaction) error {
	logrus.Infof("Iniciando inserção de %d transações...", len(transactions))
	startTime := time.Now()

	for start := 0; start < len(transactions); start += batchSize {
		end := min(start+batchSize, len(transactions))

		query := squirrel.Insert("transactions").
			Columns("product_code", "customer_code", "market_code", "order_date", "sales_qty", "sales_amount", "currency").
			PlaceholderFormat(squirrel.Dollar)
		for _, t := range transactions[start:end] {
			query = query.Values(t.ProductCode, t.CustomerCode, t.MarketCode, t.OrderDate, t.Quantity, t.Amount, t.Currency)
		}

		if err := execInsert(ctx, conn, query); err != nil {
			return err
		}
		if start > 0 && (start/batchSize)%10 == 0 {
			logrus.Infof("Progresso: %d/%d transações processadas", end, len(transactions))
		}
	}

	logrus.Infof("Inserção de transações concluída em %v", time.Since(startTime))
	return nil
}

func execInsert(ctx context.Context, conn postgres.Conn, query squirrel.InsertBuilder) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	_, err = conn.Exec(ctx, sqlStr, args...)
	return err
}

func hasTransactions(ctx context.Context, conn postgres.Conn) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM transactions)").Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return exists, err
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de carga da base de vendas...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := createSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar tabelas")
	}

	exists, err := hasTransactions(ctx, conn)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao verificar transações existentes")
	}
	if exists {
		logrus.Info("Tabela transactions já possui dados, nada a fazer")
		return
	}

	dates := GenerateDates(firstYear, lastYear)
	transactions := GenerateTransactions(rand.New(rand.NewSource(seed)), dates)

	if err := insertDates(ctx, conn, dates); err != nil {
		logrus.WithError(err).Fatal("ERRO ao inserir datas")
	}
	if err := insertMarkets(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao inserir mercados")
	}
	if err := insertCustomers(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao inserir clientes")
	}
	if err := insertTransactions(ctx, conn, transactions); err != nil {
		logrus.WithError(err).Fatal("ERRO ao inserir transações")
	}

	logrus.Info("Carga concluída com sucesso")
}
