package adapter

import "errors"

var (
	// ErrInstanceHibernating marks the degraded-availability case: the
	// transport call succeeded but the instance served its hibernation
	// placeholder instead of data.
	ErrInstanceHibernating = errors.New("Service Now instance is hibernating")

	errMalformedResponse = errors.New("malformed table API response")
)
