package db

import "errors"

var (
	ErrFailedOpenDB    = errors.New("failed to open database")
	ErrFailedToInit    = errors.New("failed to initialize schema")
	ErrFailedToBeginTx = errors.New("failed to begin transaction")
	ErrFailedToInsert  = errors.New("failed to insert")
	ErrFailedToQuery   = errors.New("failed to query")
	ErrFailedToScan    = errors.New("failed to scan")
	ErrFailedToClean   = errors.New("failed to clean")
)
