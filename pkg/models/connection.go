package models

import "errors"

var (
	errServiceURLRequired  = errors.New("service_url is required")
	errTableNameRequired   = errors.New("table_name is required")
	errCredentialsRequired = errors.New("credentials with username and password are required")
)

// Credentials holds the basic-auth identity used against the remote
// Service Now instance.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ConnectionConfig describes one remote Service Now instance and the
// table the adapter operates on. Immutable after construction; it is
// handed to the transport client once and never mutated.
type ConnectionConfig struct {
	ServiceURL  string      `json:"service_url"` // e.g., https://devXXXX.service-now.com
	Credentials Credentials `json:"credentials"`
	TableName   string      `json:"table_name"` // e.g., "change_request"
}

func (c *ConnectionConfig) Validate() error {
	if c.ServiceURL == "" {
		return errServiceURLRequired
	}

	if c.TableName == "" {
		return errTableNameRequired
	}

	if c.Credentials.Username == "" || c.Credentials.Password == "" {
		return errCredentialsRequired
	}

	return nil
}
