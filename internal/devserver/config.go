package devserver

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/posclient/internal/common"
)

// Config controls the development server.
type Config struct {
	Host       string
	Port       string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	LogLevel   string
	// Seed loads the sample catalog at startup.
	Seed bool
}

// Addr returns the HTTP bind address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// LoadConfig reads configuration from the environment (and an optional
// .env file), applying defaults where possible. Without DEVSERVER_JWT_SECRET
// a random secret is generated, so tokens do not survive a restart.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host:       getEnv("DEVSERVER_HOST", "127.0.0.1"),
		Port:       getEnv("DEVSERVER_PORT", "8080"),
		JWTSecret:  os.Getenv("DEVSERVER_JWT_SECRET"),
		TokenTTL:   time.Duration(getEnvAsInt("DEVSERVER_TOKEN_TTL_MINUTES", 60)) * time.Minute,
		BcryptCost: getEnvAsInt("DEVSERVER_BCRYPT_COST", bcrypt.DefaultCost),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Seed:       getEnvAsBool("DEVSERVER_SEED", true),
	}

	if cfg.JWTSecret == "" {
		secret, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("generate jwt secret: %w", err)
		}
		cfg.JWTSecret = secret
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
