package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalidInterval is returned when the online check interval is not
// positive.
var ErrInvalidInterval = errors.New("online check interval must be positive")

// Config holds runtime settings for the POS client.
type Config struct {
	// APIHost is the base URL of the backend, scheme included.
	APIHost string
	// DataDir holds the session database and the log file. Empty keeps the
	// session in memory only.
	DataDir  string
	DemoMode bool

	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	RateBurst int

	LogFile    string
	LogLevel   string
	LogBackend string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIHost = "http://localhost:8080"
	c.DataDir = ".posclient"
	c.DemoMode = false
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.RateLimit = 0
	c.RateBurst = 1
	c.LogFile = "posclient.log"
	c.LogLevel = "info"
	c.LogBackend = "zap"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and the process command line, in that order.
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	return Load(os.Args[1:], os.LookupEnv)
}

// Load is LoadConfig with explicit inputs.
func Load(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, c.OnlineCheckInterval)
	}
	return nil
}
