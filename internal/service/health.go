package service

import (
	"context"
	"time"
)

// Pinger checks reachability of a dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// UpstreamCheck is a readiness check against the content hub.
type UpstreamCheck struct {
	pinger  Pinger
	timeout time.Duration
}

// NewUpstreamCheck creates a readiness check with a bounded timeout.
func NewUpstreamCheck(pinger Pinger, timeout time.Duration) *UpstreamCheck {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &UpstreamCheck{pinger: pinger, timeout: timeout}
}

// Name implements the health checker contract.
func (c *UpstreamCheck) Name() string { return "content-hub" }

// Check implements the health checker contract.
func (c *UpstreamCheck) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	return c.pinger.Ping(ctx)
}
