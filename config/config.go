package config

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

// AppConfig holds the process-start configuration. Everything is read once
// in Load; there is no runtime reconfiguration.
type AppConfig struct {
	Port      string
	DBPath    string
	ModelPath string
	JWTSecret string
}

func Load() AppConfig {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	return AppConfig{
		Port:      get("PORT", "5000"),
		DBPath:    get("DB_PATH", "agromate.db"),
		ModelPath: get("MODEL_PATH", "forecast_model.json"),
		JWTSecret: get("JWT_SECRET", "super-secret"),
	}
}

// Connect opens the single-file sqlite store and runs migrations.
func Connect(cfg AppConfig) {
	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrations(DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
}
