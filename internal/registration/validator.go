package registration

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
)

// Messages shown next to an invalid field.
const (
	MsgInvalidUsername = "invalid username format"
	MsgWeakPassword    = "password must be at least 8 characters long and contain a lowercase letter and a digit"
	MsgPasswordsDiffer = "passwords do not match"
	MsgFirstNameEmpty  = "first name must not be empty"
	MsgLastNameEmpty   = "last name must not be empty"
	MsgRequired        = "this field is required"
	MsgInvalidPhone    = "invalid phone number (use the +36 format)"
	MsgInvalidTax      = "tax number must be exactly 11 characters"
)

var phonePattern = regexp.MustCompile(`^\+[0-9]{10,14}$`)

// validate is the package-level validator instance used for field rules.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("intl_phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

type rule struct {
	tag     string
	message string
	trim    bool
}

var accountRules = map[Field]rule{
	FieldUsername:  {tag: "required,email", message: MsgInvalidUsername},
	FieldPassword:  {tag: "min=8,containsany=abcdefghijklmnopqrstuvwxyz,containsany=0123456789", message: MsgWeakPassword},
	FieldFirstName: {tag: "required", message: MsgFirstNameEmpty, trim: true},
	FieldLastName:  {tag: "required", message: MsgLastNameEmpty, trim: true},
}

var addressRules = map[Field]rule{
	FieldName:        {tag: "required", message: MsgRequired, trim: true},
	FieldCountry:     {tag: "required", message: MsgRequired, trim: true},
	FieldCity:        {tag: "required", message: MsgRequired, trim: true},
	FieldStreet:      {tag: "required", message: MsgRequired, trim: true},
	FieldZip:         {tag: "required", message: MsgRequired, trim: true},
	FieldPhoneNumber: {tag: "omitempty,intl_phone", message: MsgInvalidPhone},
	FieldTaxNumber:   {tag: "omitempty,len=11", message: MsgInvalidTax},
}

// Validate returns the error message for raw as the new value of field, or ""
// when the value is acceptable. form is the state before the edit and is only
// consulted by the password confirmation rule.
func Validate(target Target, field Field, raw string, form models.RegistrationForm) string {
	if target == TargetAccount && field == FieldPasswordConfirm {
		if err := validate.VarWithValue(raw, form.Password, "eqcsfield"); err != nil {
			return MsgPasswordsDiffer
		}
		return ""
	}

	rules := addressRules
	if target == TargetAccount {
		rules = accountRules
	}
	r, ok := rules[field]
	if !ok {
		return ""
	}

	value := raw
	if r.trim {
		value = strings.TrimSpace(raw)
	}
	if err := validate.Var(value, r.tag); err != nil {
		return r.message
	}
	return ""
}
