package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"meowth-deli-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds everything the process needs from its environment. It is
// loaded once in main and passed down; nothing else reads os.Getenv.
type Config struct {
	Port       string
	DBPath     string
	JWTSecret  []byte
	BcryptCost int

	// SMTP credentials for the email verification flow.
	EmailHost     string
	EmailPort     int
	EmailUser     string
	EmailPassword string

	// Base URL used when building verification links.
	PublicBaseURL string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the environment (and .env when present) into a Config and
// validates it. Missing required fields are an error so the process fails
// at startup rather than on the first request.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "meowth_deli.db"),
		JWTSecret:     []byte(os.Getenv("JWT_SECRET")),
		BcryptCost:    10,
		EmailHost:     getEnv("EMAIL_HOST", "smtp.ethereal.email"),
		EmailPort:     587,
		EmailUser:     os.Getenv("EMAIL_USER"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}

	if v := os.Getenv("BCRYPT_SALT_ROUNDS"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_SALT_ROUNDS %q: %w", v, err)
		}
		cfg.BcryptCost = cost
	}
	if v := os.Getenv("EMAIL_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid EMAIL_PORT %q: %w", v, err)
		}
		cfg.EmailPort = port
	}

	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// OpenDB connects to the sqlite database and runs migrations.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Customer{},
		&models.Driver{},
		&models.Restaurant{},
		&models.VerifyToken{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
