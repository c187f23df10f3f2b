package domain

import (
	"time"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// TestDrive is a scheduled appointment for a catalog car. Date is a
// calendar day (2006-01-02) and Time one of the hourly showroom slots
// (15:04). CarID is optional because the booking form also accepts cars
// that are not in the catalog yet.
type TestDrive struct {
	ID        int           `json:"id"`
	Name      string        `json:"name" validate:"required"`
	Email     string        `json:"email" validate:"required,email"`
	Phone     string        `json:"phone" validate:"required"`
	Date      string        `json:"date" validate:"required"`
	Time      string        `json:"time" validate:"required"`
	CarID     *int          `json:"car_id,omitempty"`
	CarName   string        `json:"car_name" validate:"required"`
	Message   string        `json:"message,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TestDriveFilter narrows admin/staff listings; empty members are
// unconstrained.
type TestDriveFilter struct {
	Status string
	Date   string
	Email  string
}
