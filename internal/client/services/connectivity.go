package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/posclient/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// Pinger probes the backend. client.APIClient satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Connectivity keeps track of whether the backend answers.
type Connectivity struct {
	pinger      Pinger
	log         logging.Logger
	pingTimeout time.Duration

	mu       sync.RWMutex
	mode     Mode
	onChange func(Mode)
}

func NewConnectivity(p Pinger, log logging.Logger) *Connectivity {
	return &Connectivity{
		pinger:      p,
		log:         log.With("service", "connectivity"),
		pingTimeout: 3 * time.Second,
	}
}

// OnChange installs a callback invoked after every mode switch.
func (c *Connectivity) OnChange(fn func(Mode)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *Connectivity) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// Check pings the backend once and updates the mode.
func (c *Connectivity) Check(ctx context.Context) Mode {
	pingCtx, cancel := context.WithTimeout(ctx, c.pingTimeout)
	err := c.pinger.Ping(pingCtx)
	cancel()

	if err != nil {
		c.log.Debug(ctx, "ping failed", "error", err)
		c.setMode(ctx, ModeOffline)
	} else {
		c.setMode(ctx, ModeOnline)
	}
	return c.Mode()
}

// Watch checks connectivity every interval until ctx is done. A
// non-positive interval disables watching.
func (c *Connectivity) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		c.log.Warn(ctx, "connectivity watch disabled", "interval", interval)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Check(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (c *Connectivity) setMode(ctx context.Context, m Mode) {
	c.mu.Lock()
	if c.mode == m {
		c.mu.Unlock()
		return
	}
	c.mode = m
	fn := c.onChange
	c.mu.Unlock()

	c.log.Info(ctx, "switched mode", "mode", string(m))
	if fn != nil {
		fn(m)
	}
}
