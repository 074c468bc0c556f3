package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr   string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN  string        `env:"DATABASE_DSN" envDefault:""`
	CatalogPath  string        `env:"CATALOG_PATH" envDefault:""`
	FXAddr       string        `env:"FX_SYSTEM_ADDRESS" envDefault:"http://localhost:8081"`
	BatchSize    int           `env:"PAYOUT_BATCH_SIZE" envDefault:"10"`
	PollInterval time.Duration `env:"PAYOUT_POLL_INTERVAL" envDefault:"5s"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	DatabaseDSN string
	CatalogPath string
}

// FXConfig модель настроек работы с сервисом курсов валют и обработки выплат
type FXConfig struct {
	FXAddr       string
	BatchSize    int
	PollInterval time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server ServerConfig
	FX     FXConfig
}

// NewConfig - загрузка настроек: .env, переменные окружения, затем флаги командной строки
func NewConfig() Config {
	// .env необязателен, в окружении контейнера его обычно нет
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		catalog  = pflag.StringP("catalog", "c", args.CatalogPath, "Path to YAML credit package catalog")
		fx       = pflag.StringP("fx", "r", args.FXAddr, "FX rates service address in a form http://host:port.")
		batch    = pflag.IntP("batch", "b", args.BatchSize, "Payouts processed per worker tick")
		poll     = pflag.DurationP("poll", "p", args.PollInterval, "Payout worker poll interval")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			CatalogPath: *catalog,
		},
		FX: FXConfig{
			FXAddr:       *fx,
			BatchSize:    *batch,
			PollInterval: *poll,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			CatalogPath: "",
		},
		FX: FXConfig{
			FXAddr:       "http://localhost:8081",
			BatchSize:    10,
			PollInterval: 5 * time.Second,
		},
	}
}
