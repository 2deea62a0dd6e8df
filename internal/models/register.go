package models

// RegisterResponse represents the result of a registration submit attempt
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Outcome of the attempt: submitted, rejected, failed or withheld
	// example: submitted
	Outcome string `json:"outcome"`

	// Success or failure message
	// example: Registration successful
	Message string `json:"message,omitempty"`

	// Form state after the attempt
	State RegistrationState `json:"state"`
}

// RegisterErrorResponse represents an error response from the storefront API
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// example: user already exists
	Error string `json:"error"`
}
