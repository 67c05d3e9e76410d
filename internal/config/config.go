package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	FolderTreeTTLSecs  int
}

type DatabaseConfig struct {
	// Connection is the Postgres DSN. When empty the server falls back
	// to the local JSON store at LocalStorePath.
	Connection     string
	LocalStorePath string
}

type AuthConfig struct {
	JWTSecret   string
	RequireAuth bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			FolderTreeTTLSecs:  getEnvAsInt("FOLDER_TREE_TTL_SECS", 30),
		},
		Database: DatabaseConfig{
			Connection:     getEnv("DB_CONNECTION_STRING", ""),
			LocalStorePath: getEnv("LOCAL_STORE_PATH", "notekeep.localstore.json"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),
			RequireAuth: getEnvAsBool("REQUIRE_AUTH", false),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
