package domain

import (
	"regexp"
	"time"
)

// Showroom scheduling rules. Bookings are accepted on business days
// only, on hourly slots between opening and closing inclusive.
const (
	OpeningHour = 9
	ClosingHour = 17

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var phonePattern = regexp.MustCompile(`^[0-9]{8,15}$`)

// ValidationError is a booking rejection with a single human-readable
// reason. The rules in ValidateSchedule run in a fixed order and the
// first failure wins, so a request never carries more than one reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func newValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// ValidateSchedule checks the booking request against the showroom
// rules, independent of storage. Check order is a contract: required
// fields, name length, phone format, date not in the past (same-day
// allowed), weekday, business hours.
func (t *TestDrive) ValidateSchedule(now time.Time) error {
	if t.Name == "" || t.Email == "" || t.Phone == "" || t.Date == "" || t.Time == "" || t.CarName == "" {
		return newValidationError("Please provide all required fields")
	}

	if len(t.Name) < 3 {
		return newValidationError("Name must be at least 3 characters")
	}

	if !phonePattern.MatchString(t.Phone) {
		return newValidationError("Phone number must be numeric (8-15 digits)")
	}

	date, err := time.ParseInLocation(DateLayout, t.Date, now.Location())
	if err != nil {
		return newValidationError("Invalid date format, expected YYYY-MM-DD")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return newValidationError("You cannot book in the past")
	}

	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return newValidationError("Test drives are not available on weekends")
	}

	slot, err := time.Parse(TimeLayout, t.Time)
	if err != nil {
		return newValidationError("Invalid time format, expected HH:MM")
	}

	if hour := slot.Hour(); hour < OpeningHour || hour > ClosingHour {
		return newValidationError("Test drives only available from 09:00 to 17:00")
	}

	return nil
}
