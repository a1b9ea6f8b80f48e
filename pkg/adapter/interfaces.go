// Package adapter pkg/adapter/interfaces.go

//go:generate mockgen -destination=mock_adapter.go -package=adapter github.com/opsbridge/snbridge/pkg/adapter TableClient,HistoryStore

package adapter

import (
	"context"
	"time"

	"github.com/opsbridge/snbridge/pkg/models"
	"github.com/opsbridge/snbridge/pkg/servicenow"
)

// TableClient is the narrow transport contract the adapter consumes:
// one read and one create against the configured table. The client
// owns all HTTP mechanics including timeouts; the adapter owns
// classification and reshaping.
type TableClient interface {
	Get(ctx context.Context) (*servicenow.Envelope, error)
	Post(ctx context.Context, fields servicenow.Record) (*servicenow.Envelope, error)
}

// HistoryStore records health-check outcomes. Optional; a nil store
// disables history.
type HistoryStore interface {
	RecordStatus(adapterID string, status models.HealthStatus, message string, timestamp time.Time) error
}
