package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, 2026-03-04 at noon.
var testNow = time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)

func validBooking() TestDrive {
	return TestDrive{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "5551234567",
		Date:    "2026-03-05",
		Time:    "10:00",
		CarName: "BMW X5",
	}
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(td *TestDrive)
		wantReason string
	}{
		{
			name:   "valid booking",
			mutate: func(td *TestDrive) {},
		},
		{
			name:       "missing name",
			mutate:     func(td *TestDrive) { td.Name = "" },
			wantReason: "Please provide all required fields",
		},
		{
			name:       "missing car name",
			mutate:     func(td *TestDrive) { td.CarName = "" },
			wantReason: "Please provide all required fields",
		},
		{
			name:       "name too short",
			mutate:     func(td *TestDrive) { td.Name = "Jo" },
			wantReason: "Name must be at least 3 characters",
		},
		{
			name:   "name of exactly three characters",
			mutate: func(td *TestDrive) { td.Name = "Joe" },
		},
		{
			name:       "phone with letters",
			mutate:     func(td *TestDrive) { td.Phone = "555-123-4567" },
			wantReason: "Phone number must be numeric (8-15 digits)",
		},
		{
			name:       "phone too short",
			mutate:     func(td *TestDrive) { td.Phone = "1234567" },
			wantReason: "Phone number must be numeric (8-15 digits)",
		},
		{
			name:   "phone of exactly eight digits",
			mutate: func(td *TestDrive) { td.Phone = "12345678" },
		},
		{
			name:   "phone of exactly fifteen digits",
			mutate: func(td *TestDrive) { td.Phone = "123456789012345" },
		},
		{
			name:       "phone of sixteen digits",
			mutate:     func(td *TestDrive) { td.Phone = "1234567890123456" },
			wantReason: "Phone number must be numeric (8-15 digits)",
		},
		{
			name:       "unparsable date",
			mutate:     func(td *TestDrive) { td.Date = "03/05/2026" },
			wantReason: "Invalid date format, expected YYYY-MM-DD",
		},
		{
			name:       "date in the past",
			mutate:     func(td *TestDrive) { td.Date = "2026-03-03" },
			wantReason: "You cannot book in the past",
		},
		{
			name:   "same-day booking is allowed",
			mutate: func(td *TestDrive) { td.Date = "2026-03-04" },
		},
		{
			name:       "saturday",
			mutate:     func(td *TestDrive) { td.Date = "2026-03-07" },
			wantReason: "Test drives are not available on weekends",
		},
		{
			name:       "sunday",
			mutate:     func(td *TestDrive) { td.Date = "2026-03-08" },
			wantReason: "Test drives are not available on weekends",
		},
		{
			name:       "unparsable time",
			mutate:     func(td *TestDrive) { td.Time = "noon" },
			wantReason: "Invalid time format, expected HH:MM",
		},
		{
			name:       "before opening",
			mutate:     func(td *TestDrive) { td.Time = "08:00" },
			wantReason: "Test drives only available from 09:00 to 17:00",
		},
		{
			name:   "opening hour slot",
			mutate: func(td *TestDrive) { td.Time = "09:00" },
		},
		{
			name:   "closing hour slot",
			mutate: func(td *TestDrive) { td.Time = "17:00" },
		},
		{
			name:       "after closing",
			mutate:     func(td *TestDrive) { td.Time = "18:00" },
			wantReason: "Test drives only available from 09:00 to 17:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := validBooking()
			tt.mutate(&td)

			err := td.ValidateSchedule(testNow)
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantReason, vErr.Reason)
		})
	}
}

// The rules run in a fixed order and the first failure wins, so a
// request with several problems reports only the earliest one.
func TestValidateScheduleFirstFailureWins(t *testing.T) {
	td := validBooking()
	td.Name = "Jo"
	td.Phone = "abc"
	td.Date = "2026-03-07"
	td.Time = "22:00"

	err := td.ValidateSchedule(testNow)
	require.Error(t, err)
	assert.Equal(t, "Name must be at least 3 characters", err.Error())

	td.Name = "Joe"
	err = td.ValidateSchedule(testNow)
	require.Error(t, err)
	assert.Equal(t, "Phone number must be numeric (8-15 digits)", err.Error())

	td.Phone = "5551234567"
	err = td.ValidateSchedule(testNow)
	require.Error(t, err)
	assert.Equal(t, "Test drives are not available on weekends", err.Error())

	td.Date = "2026-03-05"
	err = td.ValidateSchedule(testNow)
	require.Error(t, err)
	assert.Equal(t, "Test drives only available from 09:00 to 17:00", err.Error())
}

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, BookingStatus("archived").Valid())
	assert.False(t, BookingStatus("").Valid())
}
