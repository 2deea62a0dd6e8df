package registration

import (
	"strings"

	"github.com/sbilibin2017/gw-webshop-client/internal/models"
)

// CanSubmit reports whether no leaf of errs carries a message. A field that
// was never edited holds an empty message, so a blank form passes; presence of
// required values is checked separately by MissingRequired.
func CanSubmit(errs models.ErrorSnapshot) bool {
	for _, msg := range []string{
		errs.Username, errs.Password, errs.PasswordConfirm, errs.FirstName, errs.LastName,
	} {
		if msg != "" {
			return false
		}
	}
	return addressClean(errs.ShippingAddress) && addressClean(errs.BillingAddress)
}

func addressClean(a models.AddressErrors) bool {
	return a.Name == "" && a.Country == "" && a.City == "" && a.Street == "" &&
		a.Zip == "" && a.PhoneNumber == "" && a.TaxNumber == ""
}

// MissingRequired lists required leaves whose value is blank after trimming.
// Billing is only checked while it is edited independently.
func MissingRequired(f Form) []LeafRef {
	var missing []LeafRef

	targets := []Target{TargetAccount, TargetShipping}
	if !f.SameAddress {
		targets = append(targets, TargetBilling)
	}

	for _, target := range targets {
		fields := requiredAddressFields
		if target == TargetAccount {
			fields = accountFields
		}
		for _, field := range fields {
			l, err := f.Leaf(target, field)
			if err != nil {
				continue
			}
			if strings.TrimSpace(l.Value) == "" {
				missing = append(missing, LeafRef{Target: target, Field: field})
			}
		}
	}
	return missing
}

// markMissing writes the required-field message into every missing leaf and
// reports how many were found.
func markMissing(f *Form) int {
	missing := MissingRequired(*f)
	for _, ref := range missing {
		l, err := f.Leaf(ref.Target, ref.Field)
		if err != nil {
			continue
		}
		l.Error = MsgRequired
	}
	if len(missing) > 0 {
		SyncAddresses(f)
	}
	return len(missing)
}
