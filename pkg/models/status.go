// Package models contains the shared data types exposed to the host platform.
package models

// HealthStatus is the two-state connectivity classification for a
// configured adapter instance. It is recomputed on every health check
// and never persisted as authoritative state.
type HealthStatus string

const (
	HealthOnline  HealthStatus = "ONLINE"
	HealthOffline HealthStatus = "OFFLINE"
)
