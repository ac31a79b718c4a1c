package config

import "os"

type Config struct {
	AppEnv   string
	LogLevel string
	LogFile  string

	// CatalogPath points at a YAML catalog; empty means the embedded seed.
	CatalogPath string
	// Currency overrides the catalog's symbol when set.
	Currency string
}

func Load() Config {
	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", "cartwidget.log"),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		Currency:    getEnv("CURRENCY_SYMBOL", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
