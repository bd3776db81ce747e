package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	Cache          Cache          `mapstructure:",squash"`
	Report         Report         `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Path     string `mapstructure:"database_path"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`
}

// Dataset parametriza a geração do conjunto sintético de bootstrap.
type Dataset struct {
	Seed      int64  `mapstructure:"dataset_seed"`
	StartDate string `mapstructure:"dataset_start_date"`
	Days      int    `mapstructure:"dataset_days"`
}

// Cache parametriza o cache de snapshot do conjunto completo.
type Cache struct {
	TTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

type Report struct {
	TopSales int `mapstructure:"report_top_sales"`
}

// DatasetRefresh parametriza o agendador de reaquecimento do cache.
type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_PATH", "data/sales.db")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Parâmetros do conjunto sintético (iguais ao dataset de referência)
	viper.SetDefault("DATASET_SEED", 42)
	viper.SetDefault("DATASET_START_DATE", "2026-01-01")
	viper.SetDefault("DATASET_DAYS", 180)

	viper.SetDefault("CACHE_TTL_SECONDS", 600)
	viper.SetDefault("REPORT_TOP_SALES", 15)

	viper.SetDefault("DATASET_REFRESH_CRON", "*/10 * * * *")
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	switch config.Database.Driver {
	case "sqlite":
		config.Database.DSN = config.Database.Path
	default:
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	return config, nil
}

// CacheTTL converte a configuração de TTL para time.Duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// DatasetStart interpreta a data inicial configurada do conjunto.
func (c *Config) DatasetStart() (time.Time, error) {
	return time.Parse(time.DateOnly, c.Dataset.StartDate)
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
