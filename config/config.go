package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB         DBConfig
	Telegram   TelegramConfig
	Restaurant RestaurantConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type TelegramConfig struct {
	Token string
}

type RestaurantConfig struct {
	Name        string
	CatalogFile string // optional YAML menu; empty means embedded menu (or DB when configured)
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "pos"),
		},
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
		Restaurant: RestaurantConfig{
			Name:        getEnv("RESTAURANT_NAME", "RestaurantPOS"),
			CatalogFile: getEnv("CATALOG_FILE", ""),
		},
	}, nil
}

// UseDB reports whether a Postgres catalog source is configured.
func (c *Config) UseDB() bool {
	return c.DB.Host != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
