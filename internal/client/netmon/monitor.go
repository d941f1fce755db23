// Package netmon tracks reachability of the backend by probing it
// periodically. State changes are edge triggered: subscribers hear about
// transitions, not about every probe.
package netmon

import (
	"context"
	"sync"
	"time"

	"github.com/ekuzmina/notekeeper/internal/logging"
)

// Pinger is the probe contract. The gRPC client satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

const probeTimeout = 3 * time.Second

type Monitor struct {
	pinger   Pinger
	interval time.Duration
	logger   logging.Logger

	mu     sync.RWMutex
	online bool
	subs   []chan bool
}

// NewMonitor starts in the offline state; the first successful probe flips
// it online.
func NewMonitor(pinger Pinger, interval time.Duration, logger logging.Logger) *Monitor {
	return &Monitor{pinger: pinger, interval: interval, logger: logger}
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Subscribe returns a channel that receives the new state on every
// transition. The channel is buffered; a subscriber that lags misses
// intermediate flips but always ends up observing the latest state.
func (m *Monitor) Subscribe() <-chan bool {
	ch := make(chan bool, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

// Probe runs one check immediately and returns the resulting state.
func (m *Monitor) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := m.pinger.Ping(ctx)
	m.setOnline(ctx, err == nil)
	return err == nil
}

// Run probes on a ticker until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (m *Monitor) setOnline(ctx context.Context, online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]chan bool, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	if online {
		m.logger.Info(ctx, "server reachable, switching online")
	} else {
		m.logger.Info(ctx, "server unreachable, switching offline")
	}

	for _, ch := range subs {
		select {
		case ch <- online:
		default:
			// subscriber still holds the previous edge, replace it
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- online:
			default:
			}
		}
	}
}
