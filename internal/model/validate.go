package model

import "strings"

// Validation messages shown to the user. The order in which FieldErrors
// collects them is fixed so all problems can be displayed at once.
const (
	ErrAssociateIDRequired = "Associate I.D. No. is required."
	ErrNameRequired        = "Name is required."
	ErrMobileRequired      = "Mobile number is required."
	ErrMobileFormat        = "Mobile number must be exactly 10 digits."
	ErrAgeRange            = "Please enter a valid age between 0 and 120."
	ErrEmailFormat         = "Please enter a valid email address."
	ErrAdhaarFormat        = "Adhaar Card No. must be exactly 12 digits."
	ErrDuplicateAssociate  = "Duplicate Associate I.D. No. found."
	ErrDuplicateSerial     = "Duplicate Sr. No. found."
)

// FieldErrors collects every field-level validation problem with the
// entry, in display order. Uniqueness checks against existing records
// are layered on by the store.
func (e *Entry) FieldErrors() []string {
	var errs []string

	if e.AssociateID == "" {
		errs = append(errs, ErrAssociateIDRequired)
	}

	if e.Name == "" {
		errs = append(errs, ErrNameRequired)
	}

	switch {
	case e.Mobile == "":
		errs = append(errs, ErrMobileRequired)
	case len(e.Mobile) != 10 || !isDigits(e.Mobile):
		errs = append(errs, ErrMobileFormat)
	}

	// Age zero means unset, matching the form's empty input
	if e.Age != 0 && (e.Age < 0 || e.Age > 120) {
		errs = append(errs, ErrAgeRange)
	}

	if e.Email != "" && !strings.Contains(e.Email, "@") {
		errs = append(errs, ErrEmailFormat)
	}

	if e.AdhaarID != "" && (len(e.AdhaarID) != 12 || !isDigits(e.AdhaarID)) {
		errs = append(errs, ErrAdhaarFormat)
	}

	return errs
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}