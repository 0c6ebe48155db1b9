package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Upstream struct {
		BaseURL        string `mapstructure:"base_url"`
		APIToken       string `mapstructure:"api_token"`
		CompanyID      string `mapstructure:"company_id"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"upstream"`

	Stock struct {
		// MovementWindow bounds how many recent movements are fetched per
		// reduction. Must stay large relative to per-product activity;
		// positions for products with more history than the window are
		// approximate.
		MovementWindow int `mapstructure:"movement_window"`
	} `mapstructure:"stock"`

	Cache struct {
		StatementTTLSeconds int `mapstructure:"statement_ttl_seconds"`
		StockTTLSeconds     int `mapstructure:"stock_ttl_seconds"`
	} `mapstructure:"cache"`

	Export struct {
		Bucket    string `mapstructure:"bucket"`
		Endpoint  string `mapstructure:"endpoint"`
		Region    string `mapstructure:"region"`
		AccessKey string `mapstructure:"access_key"`
		SecretKey string `mapstructure:"secret_key"`
		Prefix    string `mapstructure:"prefix"`
	} `mapstructure:"export"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("upstream.base_url", "http://localhost:9000/api")
	v.SetDefault("upstream.timeout_seconds", 30)
	v.SetDefault("stock.movement_window", 500)
	v.SetDefault("cache.statement_ttl_seconds", 60)
	v.SetDefault("cache.stock_ttl_seconds", 30)
	v.SetDefault("export.region", "auto")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Override upstream settings from UPSTREAM_* environment variables
	if base := os.Getenv("UPSTREAM_BASE_URL"); base != "" {
		cfg.Upstream.BaseURL = base
	}
	if token := os.Getenv("UPSTREAM_API_TOKEN"); token != "" {
		cfg.Upstream.APIToken = token
	}
	if company := os.Getenv("UPSTREAM_COMPANY_ID"); company != "" {
		cfg.Upstream.CompanyID = company
	}
	if window := os.Getenv("STOCK_MOVEMENT_WINDOW"); window != "" {
		if n, err := strconv.Atoi(window); err == nil && n > 0 {
			cfg.Stock.MovementWindow = n
		}
	}

	// Export credentials come from the environment, never the config file
	if bucket := os.Getenv("EXPORT_BUCKET"); bucket != "" {
		cfg.Export.Bucket = bucket
	}
	if endpoint := os.Getenv("EXPORT_ENDPOINT"); endpoint != "" {
		cfg.Export.Endpoint = endpoint
	}
	if key := os.Getenv("EXPORT_ACCESS_KEY"); key != "" {
		cfg.Export.AccessKey = key
	}
	if secret := os.Getenv("EXPORT_SECRET_KEY"); secret != "" {
		cfg.Export.SecretKey = secret
	}

	return &cfg
}
