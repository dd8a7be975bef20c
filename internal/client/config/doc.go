// Package config loads runtime configuration for the POS terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment, after loading an optional .env file from the working
//     directory: POS_API_HOST, POS_DEMO_MODE, POS_DATA_DIR, POS_LOG_LEVEL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the POS API
//	-i int      online status check interval (seconds)
//	-d string   data directory for the local session database
//	-l string   log level (debug, info, warn, error)
//	-demo       answer with sample data when the API fails
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds. Every key is optional:
//
//	{
//	  "api_host": "http://localhost:8080",
//	  "data_dir": ".posclient",
//	  "demo_mode": false,
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "rate_limit": 5,
//	  "rate_burst": 10,
//	  "log_file": "posclient.log",
//	  "log_level": "info",
//	  "log_backend": "zap"
//	}
package config
