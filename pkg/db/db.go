// Package db pkg/db/db.go provides SQLite-backed status history for
// adapter instances.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/opsbridge/snbridge/pkg/models"
)

const (
	// Maximum number of history points to keep per adapter.
	maxHistoryPoints = 1000

	// SQL statements for database initialization.
	createTablesSQL = `
	-- Current adapter status
	CREATE TABLE IF NOT EXISTS adapter_status (
		adapter_id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		message TEXT,
		last_check TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Status transition history
	CREATE TABLE IF NOT EXISTS status_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		adapter_id TEXT NOT NULL,
		status TEXT NOT NULL,
		message TEXT,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_status_history_adapter_time
		ON status_history(adapter_id, timestamp);

	-- Enable WAL mode for better concurrent access
	PRAGMA journal_mode=WAL;
	`
)

// DB represents the database connection and operations.
type DB struct {
	*sql.DB
}

// StatusHistoryPoint is a single point in an adapter's status history.
type StatusHistoryPoint struct {
	Timestamp time.Time           `json:"timestamp"`
	Status    models.HealthStatus `json:"status"`
	Message   string              `json:"message,omitempty"`
}

// New opens (creating if necessary) the history database at dbPath.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	db := &DB{DB: sqlDB}

	if err := db.initSchema(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) initSchema() error {
	if _, err := db.Exec(createTablesSQL); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	return nil
}

// RecordStatus stores the outcome of one health check: the current
// status row is upserted and a history point is appended. Old history
// beyond maxHistoryPoints is pruned.
func (db *DB) RecordStatus(adapterID string, status models.HealthStatus, message string, timestamp time.Time) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToBeginTx, err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO adapter_status (adapter_id, status, message, last_check)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(adapter_id) DO UPDATE SET
			status = excluded.status,
			message = excluded.message,
			last_check = excluded.last_check`,
		adapterID, string(status), message, timestamp)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, err)
	}

	_, err = tx.Exec(`
		INSERT INTO status_history (adapter_id, status, message, timestamp)
		VALUES (?, ?, ?, ?)`,
		adapterID, string(status), message, timestamp)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, err)
	}

	_, err = tx.Exec(`
		DELETE FROM status_history
		WHERE adapter_id = ?
		AND id NOT IN (
			SELECT id FROM status_history
			WHERE adapter_id = ?
			ORDER BY timestamp DESC
			LIMIT ?
		)`,
		adapterID, adapterID, maxHistoryPoints)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToClean, err)
	}

	return tx.Commit()
}

// GetStatusHistory returns the most recent history points for the
// adapter, newest first.
func (db *DB) GetStatusHistory(adapterID string, limit int) ([]StatusHistoryPoint, error) {
	if limit <= 0 || limit > maxHistoryPoints {
		limit = maxHistoryPoints
	}

	rows, err := db.Query(`
		SELECT timestamp, status, message
		FROM status_history
		WHERE adapter_id = ?
		ORDER BY timestamp DESC
		LIMIT ?`,
		adapterID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	points := make([]StatusHistoryPoint, 0, limit)

	for rows.Next() {
		var (
			point   StatusHistoryPoint
			status  string
			message sql.NullString
		)

		if err := rows.Scan(&point.Timestamp, &status, &message); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToScan, err)
		}

		point.Status = models.HealthStatus(status)
		point.Message = message.String

		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToQuery, err)
	}

	return points, nil
}
