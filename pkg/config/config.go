package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config is built once at process start and passed by reference everywhere;
// there are no ambient globals. Rotating JWTSecret invalidates every
// previously issued token.
type Config struct {
	Port            string
	Env             string
	MongoURI        string
	MongoDatabase   string
	PostgresConnStr string
	JWTSecret       string
	StorageDriver   string
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "secondbrain"),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:       getEnv("JWT_SECRET", "supersecretjwtkey"),
		StorageDriver:   getEnv("STORAGE_DRIVER", DriverMongo),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
