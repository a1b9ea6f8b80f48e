// Package api pkg/api/interfaces.go

//go:generate mockgen -destination=mock_api.go -package=api github.com/opsbridge/snbridge/pkg/api AdapterService,HistoryProvider

package api

import (
	"context"

	"github.com/opsbridge/snbridge/pkg/adapter"
	"github.com/opsbridge/snbridge/pkg/db"
	"github.com/opsbridge/snbridge/pkg/models"
	"github.com/opsbridge/snbridge/pkg/servicenow"
)

// AdapterService covers the adapter operations the HTTP API exposes.
type AdapterService interface {
	ID() string
	LastStatus() adapter.Status
	GetRecords(ctx context.Context) ([]models.ChangeRecord, error)
	PostRecord(ctx context.Context, fields servicenow.Record) (*models.ChangeRecord, error)
}

// HistoryProvider serves recorded status transitions.
type HistoryProvider interface {
	GetStatusHistory(adapterID string, limit int) ([]db.StatusHistoryPoint, error)
}
