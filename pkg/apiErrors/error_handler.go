package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes grouped by the failure taxonomy the adapters share:
// configuration, upstream auth, upstream availability, data shape.
const (
	// Validation errors
	ErrInvalidRequest      = "VAL_001" // malformed request
	ErrMissingRequiredData = "VAL_002" // required parameter absent
	ErrInvalidFormat       = "VAL_003" // parameter has the wrong format

	// Configuration errors
	ErrMissingCredentials = "CFG_001" // required environment values unset

	// Upstream errors
	ErrUpstreamAuth        = "UPS_001" // third-party API rejected our credentials
	ErrUpstreamUnavailable = "UPS_002" // timeout, 5xx or network failure
	ErrUpstreamDataShape   = "UPS_003" // expected column/row missing in export

	// Server errors
	ErrInternalServer  = "SRV_001"
	ErrExternalService = "SRV_003"
	ErrCommunication   = "SRV_004"
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrMissingCredentials:  http.StatusBadRequest,
	ErrUpstreamAuth:        http.StatusBadGateway,
	ErrUpstreamUnavailable: http.StatusBadGateway,
	ErrUpstreamDataShape:   http.StatusBadGateway,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError is the error body used by the report endpoints. Error is
// always true; clients branch on it before reading data fields.
type APIError struct {
	Error   bool   `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"errorDetails,omitempty"`
}

// WriteError writes the standardized error to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Error:   true,
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
