package registration

import (
	"fmt"

	"github.com/sbilibin2017/gw-webshop-client/internal/models"
)

// Leaf holds a field value together with its validation message, so the two
// are always written in one assignment.
type Leaf struct {
	Value string
	Error string
}

type addressLeaves struct {
	Name        Leaf
	Country     Leaf
	City        Leaf
	Street      Leaf
	Zip         Leaf
	PhoneNumber Leaf
	TaxNumber   Leaf
}

func (a *addressLeaves) leaf(field Field) *Leaf {
	switch field {
	case FieldName:
		return &a.Name
	case FieldCountry:
		return &a.Country
	case FieldCity:
		return &a.City
	case FieldStreet:
		return &a.Street
	case FieldZip:
		return &a.Zip
	case FieldPhoneNumber:
		return &a.PhoneNumber
	case FieldTaxNumber:
		return &a.TaxNumber
	}
	return nil
}

func (a addressLeaves) values() models.Address {
	return models.Address{
		Name:        a.Name.Value,
		Country:     a.Country.Value,
		City:        a.City.Value,
		Street:      a.Street.Value,
		Zip:         a.Zip.Value,
		PhoneNumber: a.PhoneNumber.Value,
		TaxNumber:   a.TaxNumber.Value,
	}
}

func (a addressLeaves) errors() models.AddressErrors {
	return models.AddressErrors{
		Name:        a.Name.Error,
		Country:     a.Country.Error,
		City:        a.City.Error,
		Street:      a.Street.Error,
		Zip:         a.Zip.Error,
		PhoneNumber: a.PhoneNumber.Error,
		TaxNumber:   a.TaxNumber.Error,
	}
}

// Form is the full registration form state: every leaf carries its value and
// its current error message.
type Form struct {
	Username        Leaf
	Password        Leaf
	PasswordConfirm Leaf
	FirstName       Leaf
	LastName        Leaf

	Shipping addressLeaves
	Billing  addressLeaves

	SameAddress bool
}

// NewForm returns a blank form with no errors and the default billing tax number.
func NewForm() Form {
	var f Form
	f.Billing.TaxNumber.Value = models.DefaultTaxNumber
	return f
}

// Leaf returns a pointer to the addressed leaf.
func (f *Form) Leaf(target Target, field Field) (*Leaf, error) {
	var l *Leaf
	switch target {
	case TargetAccount:
		switch field {
		case FieldUsername:
			l = &f.Username
		case FieldPassword:
			l = &f.Password
		case FieldPasswordConfirm:
			l = &f.PasswordConfirm
		case FieldFirstName:
			l = &f.FirstName
		case FieldLastName:
			l = &f.LastName
		}
	case TargetShipping:
		l = f.Shipping.leaf(field)
	case TargetBilling:
		l = f.Billing.leaf(field)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	if l == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, LeafRef{Target: target, Field: field})
	}
	return l, nil
}

// ApplyFieldChange writes raw into the addressed leaf and recomputes that
// leaf's error message. No other leaf is touched.
func (f *Form) ApplyFieldChange(target Target, field Field, raw string) error {
	l, err := f.Leaf(target, field)
	if err != nil {
		return err
	}
	*l = Leaf{Value: raw, Error: Validate(target, field, raw, f.Values())}
	return nil
}

// Values projects the form onto the payload sent to the storefront API.
func (f Form) Values() models.RegistrationForm {
	return models.RegistrationForm{
		Username:        f.Username.Value,
		Password:        f.Password.Value,
		PasswordConfirm: f.PasswordConfirm.Value,
		FirstName:       f.FirstName.Value,
		LastName:        f.LastName.Value,
		ShippingAddress: f.Shipping.values(),
		BillingAddress:  f.Billing.values(),
	}
}

// Errors projects the form onto its error snapshot.
func (f Form) Errors() models.ErrorSnapshot {
	return models.ErrorSnapshot{
		Username:        f.Username.Error,
		Password:        f.Password.Error,
		PasswordConfirm: f.PasswordConfirm.Error,
		FirstName:       f.FirstName.Error,
		LastName:        f.LastName.Error,
		ShippingAddress: f.Shipping.errors(),
		BillingAddress:  f.Billing.errors(),
	}
}
