package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// E-mail address
	// required: true
	// example: john@example.com
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Where the browser should navigate next
	// example: /
	Redirect string `json:"redirect"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Per-field messages
	UsernameError string `json:"usernameError,omitempty"`
	PasswordError string `json:"passwordError,omitempty"`

	// Error message
	// example: invalid username or password, please try again
	Error string `json:"error,omitempty"`
}

// RedirectResponse tells the browser to navigate elsewhere.
// swagger:model RedirectResponse
type RedirectResponse struct {
	// example: /login
	Redirect string `json:"redirect"`
}
