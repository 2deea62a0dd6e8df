package registration

// SetSameAddress flips the toggle. Turning it on mirrors shipping onto
// billing immediately; turning it off leaves billing as last mirrored.
func (f *Form) SetSameAddress(on bool) {
	f.SameAddress = on
	SyncAddresses(f)
}

// SyncAddresses copies every shipping leaf except the tax number onto billing
// when the toggle is on. Values travel with their error messages. Billing is
// never copied back onto shipping.
func SyncAddresses(f *Form) {
	if !f.SameAddress {
		return
	}
	taxNumber := f.Billing.TaxNumber
	f.Billing = f.Shipping
	f.Billing.TaxNumber = taxNumber
}
