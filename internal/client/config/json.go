package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/posclient/internal/flagx"
	"github.com/dmitrijs2005/posclient/internal/timex"
)

// JSONConfig is a DTO used only for unmarshalling. Pointer fields tell an
// absent key from a zero value, so the file only overrides what it names.
type JSONConfig struct {
	APIHost             *string         `json:"api_host"`
	DataDir             *string         `json:"data_dir"`
	DemoMode            *bool           `json:"demo_mode"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	RateLimit           *float64        `json:"rate_limit"`
	RateBurst           *int            `json:"rate_burst"`
	LogFile             *string         `json:"log_file"`
	LogLevel            *string         `json:"log_level"`
	LogBackend          *string         `json:"log_backend"`
}

// parseJSON overlays cfg with the file named by -c/-config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIf(&cfg.APIHost, jc.APIHost)
	setIf(&cfg.DataDir, jc.DataDir)
	setIf(&cfg.DemoMode, jc.DemoMode)
	setIf(&cfg.RateLimit, jc.RateLimit)
	setIf(&cfg.RateBurst, jc.RateBurst)
	setIf(&cfg.LogFile, jc.LogFile)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogBackend, jc.LogBackend)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
