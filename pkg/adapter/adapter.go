// Package adapter bridges the host platform's generic event/record
// contract to a Service Now change-management instance: it classifies
// connectivity into ONLINE/OFFLINE and reshapes remote change records
// into the canonical shape.
package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/opsbridge/snbridge/pkg/events"
	"github.com/opsbridge/snbridge/pkg/logger"
	"github.com/opsbridge/snbridge/pkg/models"
)

const defaultPollInterval = 30 * time.Second

// Status is a snapshot of the adapter's last health-check outcome.
type Status struct {
	AdapterID string              `json:"adapter_id"`
	Status    models.HealthStatus `json:"status"`
	LastCheck time.Time           `json:"last_check"`
	LastError string              `json:"last_error,omitempty"`
}

// Adapter owns one remote instance connection. Calls are independent;
// overlapping health checks or record operations race against the
// transport client with no ordering between their completions.
type Adapter struct {
	id           string
	client       TableClient
	bus          *events.Bus
	log          logger.Logger
	history      HistoryStore
	pollInterval time.Duration

	mu   sync.RWMutex
	last Status
}

type Option func(*Adapter)

// WithHistoryStore enables recording of every health-check outcome.
func WithHistoryStore(store HistoryStore) Option {
	return func(a *Adapter) {
		a.history = store
	}
}

// WithPollInterval sets the interval of the monitoring loop started by
// Start.
func WithPollInterval(interval time.Duration) Option {
	return func(a *Adapter) {
		if interval > 0 {
			a.pollInterval = interval
		}
	}
}

// New creates an adapter for the given instance id. The id is opaque;
// it only tags emitted events and log lines so concurrently configured
// instances are distinguishable.
func New(id string, client TableClient, bus *events.Bus, log logger.Logger, opts ...Option) *Adapter {
	a := &Adapter{
		id:           id,
		client:       client,
		bus:          bus,
		log:          log,
		pollInterval: defaultPollInterval,
		last: Status{
			AdapterID: id,
		},
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// ID returns the configured instance id.
func (a *Adapter) ID() string {
	return a.id
}

// LastStatus returns a snapshot of the most recent health-check
// outcome.
func (a *Adapter) LastStatus() Status {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.last
}

// Start runs the monitoring loop: an initial connect followed by one
// health check per poll interval, until the context ends. Implements
// lifecycle.Service.
func (a *Adapter) Start(ctx context.Context) error {
	a.Connect(ctx)

	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			_, _ = a.HealthCheck(ctx)
		}
	}
}

// Stop implements lifecycle.Service. The adapter holds no resources of
// its own; the transport client's connections are its own concern.
func (a *Adapter) Stop(_ context.Context) error {
	return nil
}

func (a *Adapter) setStatus(status models.HealthStatus, message string) {
	now := time.Now()

	a.mu.Lock()
	a.last = Status{
		AdapterID: a.id,
		Status:    status,
		LastCheck: now,
		LastError: message,
	}
	a.mu.Unlock()

	if a.history != nil {
		if err := a.history.RecordStatus(a.id, status, message, now); err != nil {
			a.log.Error("%s: failed to record status history: %v", a.id, err)
		}
	}
}
