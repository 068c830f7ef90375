package model

import "time"

// DateFormat is the ISO date layout used for the entry date and date of birth.
const DateFormat = "2006-01-02"

// Entry represents a single personnel entry card record.
type Entry struct {
	// SerialNumber is the primary key, assigned client-side as max+1
	SerialNumber int64 `json:"serial_number"`

	// AssociateID is the associate identity number, unique across all entries
	AssociateID string `json:"associate_id"`

	// Date is the ISO date the entry was recorded, preserved on update
	Date string `json:"date"`

	// Name is the person's full name
	Name string `json:"name"`

	// Mobile is the mobile number, exactly 10 digits
	Mobile string `json:"mobile"`

	// Height is an optional free-form height (e.g. "172 cm")
	Height string `json:"height,omitempty"`

	// Age is optional; zero means unset
	Age int64 `json:"age,omitempty"`

	// Email is optional; must contain "@" when set
	Email string `json:"email,omitempty"`

	// AdhaarID is optional; exactly 12 digits when set
	AdhaarID string `json:"adhaar_id,omitempty"`

	// DateOfBirth is an optional ISO date
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// Today returns the current date in the entry date format.
func Today() string {
	return time.Now().Format(DateFormat)
}
