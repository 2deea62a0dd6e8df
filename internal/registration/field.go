package registration

import (
	"errors"
	"fmt"
)

// Target tells which part of the form a field belongs to.
type Target string

const (
	TargetAccount  Target = "account"
	TargetShipping Target = "shippingAddress"
	TargetBilling  Target = "billingAddress"
)

// Field identifies a single leaf of the registration form.
type Field string

const (
	FieldUsername        Field = "username"
	FieldPassword        Field = "password"
	FieldPasswordConfirm Field = "passwordConfirm"
	FieldFirstName       Field = "firstName"
	FieldLastName        Field = "lastName"

	FieldName        Field = "name"
	FieldCountry     Field = "country"
	FieldCity        Field = "city"
	FieldStreet      Field = "street"
	FieldZip         Field = "zip"
	FieldPhoneNumber Field = "phoneNumber"
	FieldTaxNumber   Field = "taxNumber"
)

var (
	ErrUnknownTarget = errors.New("unknown form target")
	ErrUnknownField  = errors.New("unknown form field")
)

// ParseTarget maps the wire name of a form section to a Target.
// An empty name selects the account fields.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case "", TargetAccount:
		return TargetAccount, nil
	case TargetShipping, TargetBilling:
		return Target(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
}

// LeafRef points at one leaf of the form.
type LeafRef struct {
	Target Target
	Field  Field
}

func (r LeafRef) String() string {
	if r.Target == TargetAccount {
		return string(r.Field)
	}
	return string(r.Target) + "." + string(r.Field)
}

var (
	accountFields = []Field{
		FieldUsername, FieldPassword, FieldPasswordConfirm, FieldFirstName, FieldLastName,
	}
	requiredAddressFields = []Field{
		FieldName, FieldCountry, FieldCity, FieldStreet, FieldZip,
	}
)
