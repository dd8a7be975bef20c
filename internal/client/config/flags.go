package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/posclient/internal/flagx"
)

// parseFlags overrides cfg with the flags this package owns. Other flags on
// the command line are ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-d", "-l"}, []string{"-demo"})

	fs := flag.NewFlagSet("posclient", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIHost, "a", cfg.APIHost, "base URL of the POS API")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.DemoMode, "demo", cfg.DemoMode, "use sample data when the API fails")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
	return nil
}
