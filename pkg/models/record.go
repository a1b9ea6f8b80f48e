package models

import (
	"fmt"
	"strings"
)

// ChangeRecord is the canonical change-request shape exposed to the
// host platform, independent of the remote table schema. Constructed
// fresh per retrieval, never cached, never mutated after construction.
type ChangeRecord struct {
	ChangeTicketNumber string  `json:"change_ticket_number"`
	Active             bool    `json:"active"`
	Priority           string  `json:"priority"`
	Description        string  `json:"description"`
	WorkStart          *string `json:"work_start"`
	WorkEnd            *string `json:"work_end"`
	ChangeTicketKey    string  `json:"change_ticket_key"`
}

// NormalizeRecord reshapes a raw remote record into the canonical
// shape: number -> change_ticket_number, sys_id -> change_ticket_key,
// all other fields pass through under their own names. The mapping is
// total: missing or malformed fields null-fill, they never fail the
// enclosing record set.
func NormalizeRecord(raw map[string]interface{}) ChangeRecord {
	return ChangeRecord{
		ChangeTicketNumber: stringField(raw, "number"),
		Active:             boolField(raw, "active"),
		Priority:           stringField(raw, "priority"),
		Description:        stringField(raw, "description"),
		WorkStart:          optionalField(raw, "work_start"),
		WorkEnd:            optionalField(raw, "work_end"),
		ChangeTicketKey:    stringField(raw, "sys_id"),
	}
}

func stringField(raw map[string]interface{}, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}

// boolField accepts native booleans as well as the string booleans
// ("true"/"false") Service Now serves from some table views.
func boolField(raw map[string]interface{}, key string) bool {
	v, ok := raw[key]
	if !ok || v == nil {
		return false
	}

	switch value := v.(type) {
	case bool:
		return value
	case string:
		return strings.EqualFold(value, "true") || value == "1"
	default:
		return false
	}
}

func optionalField(raw map[string]interface{}, key string) *string {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}

	if str, ok := v.(string); ok {
		return &str
	}

	s := fmt.Sprintf("%v", v)

	return &s
}
