package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Output   Output   `mapstructure:",squash"`
	Report   Report   `mapstructure:",squash"`
	Export   Export   `mapstructure:",squash"`
	Schedule Schedule `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Host     string `mapstructure:"database_host"`
	Port     int    `mapstructure:"database_port"`
	Name     string `mapstructure:"database_name"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type Output struct {
	Dir       string `mapstructure:"output_dir"`
	ChartsDir string `mapstructure:"charts_dir"`
}

type Report struct {
	SecondaryCurrency string  `mapstructure:"report_secondary_currency"`
	ConversionRate    float64 `mapstructure:"report_conversion_rate"`
	OutlierQuantile   float64 `mapstructure:"report_outlier_quantile"`
	TopMarkets        int     `mapstructure:"report_top_markets"`
	TopCustomers      int     `mapstructure:"report_top_customers"`
}

type Export struct {
	XLSXEnabled bool `mapstructure:"export_xlsx_enabled"`
	PDFEnabled  bool `mapstructure:"export_pdf_enabled"`
}

type Schedule struct {
	CronSchedule string `mapstructure:"report_schedule_cron"`
	Enabled      bool   `mapstructure:"report_schedule_enabled"`
}

// Server é o servidor de status, ativo apenas no modo agendado
type Server struct {
	Enabled        bool     `mapstructure:"status_server_enabled"`
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	SecretKey      string   `mapstructure:"secret_key"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", 5432)
	viper.SetDefault("DATABASE_NAME", "sales")
	viper.SetDefault("DATABASE_USER", "root")
	viper.SetDefault("DATABASE_PASSWORD", "") // vazio é válido para bases locais
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("OUTPUT_DIR", ".")
	viper.SetDefault("CHARTS_DIR", "charts")

	viper.SetDefault("REPORT_SECONDARY_CURRENCY", "USD")
	viper.SetDefault("REPORT_CONVERSION_RATE", 74)
	viper.SetDefault("REPORT_OUTLIER_QUANTILE", 0.99)
	viper.SetDefault("REPORT_TOP_MARKETS", 7)
	viper.SetDefault("REPORT_TOP_CUSTOMERS", 5)

	viper.SetDefault("EXPORT_XLSX_ENABLED", true)
	viper.SetDefault("EXPORT_PDF_ENABLED", true)

	viper.SetDefault("REPORT_SCHEDULE_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("REPORT_SCHEDULE_ENABLED", false)

	viper.SetDefault("STATUS_SERVER_ENABLED", false)
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SECRET_KEY", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Nome antigo da variável da senha, mantido para quem já usa o script original
	if config.Database.Password == "" {
		config.Database.Password = os.Getenv("MYSQL_PASSWORD")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// Validate verifica os parâmetros que alteram os números do relatório
func (c *Config) Validate() error {
	if c.Report.ConversionRate <= 0 {
		return fmt.Errorf("config: taxa de conversão inválida: %v", c.Report.ConversionRate)
	}
	if c.Report.OutlierQuantile <= 0 || c.Report.OutlierQuantile > 1 {
		return fmt.Errorf("config: quantil de outliers deve estar em (0, 1]: %v", c.Report.OutlierQuantile)
	}
	if c.Report.TopMarkets <= 0 || c.Report.TopCustomers <= 0 {
		return fmt.Errorf("config: tamanho do top deve ser positivo")
	}
	if c.Server.Enabled && c.Server.SecretKey == "" {
		return fmt.Errorf("config: SECRET_KEY é obrigatória com o servidor de status ativo")
	}
	return nil
}

// Addr retorna o endereço de escuta do servidor de status
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// ChartsPath retorna o diretório dos gráficos dentro do diretório de saída
func (c *Config) ChartsPath() string {
	if filepath.IsAbs(c.Output.ChartsDir) {
		return c.Output.ChartsDir
	}
	return filepath.Join(c.Output.Dir, c.Output.ChartsDir)
}

// BuildDSN monta a URL de conexão no formato aceito pelo lib/pq
func BuildDSN(db Database) string {
	dsn := url.URL{
		Scheme:   db.Driver,
		User:     url.UserPassword(db.User, db.Password),
		Host:     net.JoinHostPort(db.Host, fmt.Sprint(db.Port)),
		Path:     "/" + db.Name,
		RawQuery: url.Values{"sslmode": []string{db.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
