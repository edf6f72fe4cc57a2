package models

// Observation is the record persisted for every handled request
// It is stored as JSON under a millisecond timestamp key
type Observation struct {
	IP      string `json:"ip"`      // Resolved client IP (trusted header or default)
	Country string `json:"country"` // Resolved country code (trusted header or default)
}

// IPView is the payload returned by GET /json
// The capitalized key is part of the public response format
type IPView struct {
	IP string `json:"IP"`
}

// ErrorResponse is the standard error response format
// This is what we return when something goes wrong
type ErrorResponse struct {
	Error string `json:"error"` // Error message
}
