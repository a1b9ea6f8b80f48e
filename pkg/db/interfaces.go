// Package db pkg/db/interfaces.go

//go:generate mockgen -destination=mock_db.go -package=db github.com/opsbridge/snbridge/pkg/db Service

package db

import (
	"time"

	"github.com/opsbridge/snbridge/pkg/models"
)

// Service covers the status-history operations used by the adapter and
// the HTTP API.
type Service interface {
	RecordStatus(adapterID string, status models.HealthStatus, message string, timestamp time.Time) error
	GetStatusHistory(adapterID string, limit int) ([]StatusHistoryPoint, error)
	Close() error
}
