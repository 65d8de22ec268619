package models

// Response is the uniform JSON envelope of every API response.
type Response struct {
	// Errors lists human-readable problems. Empty on success.
	Errors []string `json:"errors"`

	// Message is a short summary of the outcome.
	Message string `json:"message"`

	// Data carries the payload or nil.
	Data any `json:"data"`
}
