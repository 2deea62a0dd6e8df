package models

// Profile is the current user as returned by the storefront API.
// swagger:model Profile
type Profile struct {
	// example: Doe
	LastName string `json:"lastName"`
	// example: John
	FirstName string `json:"firstName"`
	// example: john@example.com
	Email string `json:"email"`
}

// ProfileErrorResponse represents an error response when fetching the profile
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// example: Unauthorized
	Error string `json:"error"`
	// example: /login
	Redirect string `json:"redirect,omitempty"`
}
