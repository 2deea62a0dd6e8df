package models

// DefaultTaxNumber is the placeholder tax number a fresh billing address starts with.
const DefaultTaxNumber = "00000000000"

// Address represents one postal/contact address of a registration.
// swagger:model Address
type Address struct {
	// Recipient name
	// required: true
	// example: John Doe
	Name string `json:"name"`

	// Country
	// required: true
	// example: Hungary
	Country string `json:"country"`

	// City
	// required: true
	// example: Budapest
	City string `json:"city"`

	// Street and house number
	// required: true
	// example: Fo utca 1.
	Street string `json:"street"`

	// Postal code
	// required: true
	// example: 1011
	Zip string `json:"zip"`

	// International phone number, meaningful on the shipping address only
	// example: +36301234567
	PhoneNumber string `json:"phoneNumber,omitempty"`

	// Tax number, meaningful on the billing address only
	// example: 12345678901
	TaxNumber string `json:"taxNumber,omitempty"`
}

// RegistrationForm is the payload sent to the storefront API on registration.
// swagger:model RegistrationForm
type RegistrationForm struct {
	// E-mail address used as username
	// required: true
	// example: john@example.com
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Password confirmation
	// required: true
	// example: secret123
	PasswordConfirm string `json:"passwordConfirm"`

	// First name
	// required: true
	// example: John
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	// example: Doe
	LastName string `json:"lastName"`

	ShippingAddress Address `json:"shippingAddress"`
	BillingAddress  Address `json:"billingAddress"`
}

// AddressErrors mirrors Address with one message per field; empty means valid.
// swagger:model AddressErrors
type AddressErrors struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Street      string `json:"street"`
	Zip         string `json:"zip"`
	PhoneNumber string `json:"phoneNumber"`
	TaxNumber   string `json:"taxNumber"`
}

// ErrorSnapshot mirrors RegistrationForm with one message per field; empty means valid.
// swagger:model ErrorSnapshot
type ErrorSnapshot struct {
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	PasswordConfirm string        `json:"passwordConfirm"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	ShippingAddress AddressErrors `json:"shippingAddress"`
	BillingAddress  AddressErrors `json:"billingAddress"`
}

// RegistrationState is the view of a registration form returned to the browser.
// swagger:model RegistrationState
type RegistrationState struct {
	// Current form values
	Form RegistrationForm `json:"form"`

	// Per-field error messages
	Errors ErrorSnapshot `json:"errors"`

	// Whether the billing address mirrors the shipping address
	SameAddress bool `json:"sameAddress"`

	// Submission lifecycle state
	// example: editing
	Status string `json:"status"`

	// Top-level submission error
	// example: user already exists
	SubmitError string `json:"submitError,omitempty"`

	// Whether the registration success indicator is shown
	ShowSuccess bool `json:"showSuccess"`

	// Whether the form currently passes the submit gate
	CanSubmit bool `json:"canSubmit"`
}

// FieldChangeRequest represents a single field edit (keystroke or blur).
// swagger:model FieldChangeRequest
type FieldChangeRequest struct {
	// Which part of the form the field belongs to: account, shippingAddress or billingAddress
	// example: shippingAddress
	Target string `json:"target"`

	// Field name
	// required: true
	// example: city
	Field string `json:"field"`

	// Raw input value
	// example: Budapest
	Value string `json:"value"`
}

// SameAddressRequest toggles billing address mirroring.
// swagger:model SameAddressRequest
type SameAddressRequest struct {
	// example: true
	SameAddress bool `json:"sameAddress"`
}

// RegistrationErrorResponse represents an error response for registration endpoints
// swagger:model RegistrationErrorResponse
type RegistrationErrorResponse struct {
	// Error message
	// example: a submission is already in progress
	Error string `json:"error"`
}
