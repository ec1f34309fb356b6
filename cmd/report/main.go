package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report/infrastructure/repository"
	"github.com/vfg2006/sales-report/internal/api"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/scheduler"
	"github.com/vfg2006/sales-report/internal/usecases/analyzing"
	"github.com/vfg2006/sales-report/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report/internal/usecases/charting"
	"github.com/vfg2006/sales-report/internal/usecases/exporting"
	"github.com/vfg2006/sales-report/internal/usecases/generating"
	"github.com/vfg2006/sales-report/internal/usecases/reporting"
)

func main() {
	issueToken := flag.String("issue-token", "", "emite um token para o servidor de status (admin ou viewer) e sai")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "validade do token emitido")
	flag.Parse()

	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if *issueToken != "" {
		token, err := newToken(cfg, *issueToken, *tokenTTL)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao emitir token")
		}
		fmt.Println(token)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	generator := newGenerator(cfg, os.Stdout)

	syncService := scheduler.NewReportSyncService(generator, cfg)
	if !syncService.Enabled() {
		if _, err := generator.Generate(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar relatório")
		}
		return
	}

	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao iniciar o agendador do relatório")
	}
	logrus.Info("Agendador do relatório iniciado com sucesso")

	if cfg.Server.Enabled {
		server := api.New(cfg, syncService, authenticating.NewService(cfg.Server.SecretKey))
		if err := server.Run(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro no servidor de status")
		}
		return
	}

	<-ctx.Done()
	logrus.Info("Encerrando")
}

// newToken assina um token do servidor de status para o papel informado
func newToken(cfg *config.Config, role string, ttl time.Duration) (string, error) {
	roles := map[string]int{
		"admin":  domain.RoleAdmin,
		"viewer": domain.RoleViewer,
	}
	roleID, ok := roles[role]
	if !ok {
		return "", fmt.Errorf("papel desconhecido: %s", role)
	}

	return authenticating.NewService(cfg.Server.SecretKey).GenerateToken(role, roleID, ttl)
}

// configureLogger configura o formato e comportamento dos logs.
// Logs vão para stderr; o relatório usa stdout.
func configureLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func newGenerator(cfg *config.Config, out io.Writer) *generating.Service {
	policy := domain.CurrencyPolicy{
		SecondaryCurrency: cfg.Report.SecondaryCurrency,
		ConversionRate:    cfg.Report.ConversionRate,
	}

	analyzer := analyzing.NewService(pgconnect(cfg.Database, policy), analyzing.Options{
		ChartTopMarkets:   cfg.Report.TopMarkets,
		ChartTopCustomers: cfg.Report.TopCustomers,
		OutlierQuantile:   cfg.Report.OutlierQuantile,
	})

	return generating.NewService(
		analyzer,
		reporting.NewReporter(out),
		charting.NewRenderer(cfg.ChartsPath()),
		exporting.NewExporter(cfg.Output.Dir, exporting.Options{
			XLSXEnabled: cfg.Export.XLSXEnabled,
			PDFEnabled:  cfg.Export.PDFEnabled,
		}),
		out,
	)
}

// pgconnect abre uma conexão nova a cada execução do relatório
func pgconnect(dbConfig config.Database, policy domain.CurrencyPolicy) analyzing.ConnectFunc {
	return func(ctx context.Context) (repository.SalesAnalyticsRepository, io.Closer, error) {
		conn, err := postgres.NewConnection(ctx, dbConfig)
		if err != nil {
			return nil, nil, err
		}

		logrus.WithField("database_host", dbConfig.Host).Debug("Conexão com PostgreSQL estabelecida com sucesso")
		return repository.NewSalesAnalyticsRepository(conn, policy), conn, nil
	}
}
