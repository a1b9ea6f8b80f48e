// Package servicenow implements the transport collaborator: an
// authenticated HTTP client for the Service Now Table API. It performs
// the HTTP mechanics only; classification and record reshaping belong
// to the adapter.
package servicenow

// Record is a single raw table record as returned by the remote
// instance, field names untouched.
type Record map[string]interface{}

// TableResponse is the JSON envelope the Table API wraps read results
// in.
type TableResponse struct {
	Result []Record `json:"result"`
}

// RecordResponse is the JSON envelope for single-record operations,
// e.g. the created record echoed back by a create call.
type RecordResponse struct {
	Result Record `json:"result"`
}

// ErrorResponse is the Table API error body shape.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	} `json:"error"`
}

// Envelope is the raw response handed to the adapter on a successful
// transport call: the HTTP status code and the undecoded body. The
// body is kept raw because a degraded instance answers 200 with an
// HTML placeholder page instead of JSON.
type Envelope struct {
	StatusCode int
	Body       []byte
}
