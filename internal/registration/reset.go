package registration

// Reset replaces the form with a fresh one in a single assignment.
func Reset(f *Form) {
	*f = NewForm()
}
