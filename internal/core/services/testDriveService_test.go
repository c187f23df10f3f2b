package services

import (
	"context"
	"testing"
	"time"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

// In-memory repository with the same slot semantics as the SQL one:
// cancelled bookings do not hold their slot.
type memTestDriveRepo struct {
	nextID int
	drives map[int]*domain.TestDrive
}

func newMemTestDriveRepo() *memTestDriveRepo {
	return &memTestDriveRepo{nextID: 1, drives: map[int]*domain.TestDrive{}}
}

func (r *memTestDriveRepo) CreateTestDrive(ctx context.Context, td *domain.TestDrive) (*domain.TestDrive, error) {
	stored := *td
	stored.ID = r.nextID
	r.nextID++
	r.drives[stored.ID] = &stored
	return &stored, nil
}

func (r *memTestDriveRepo) GetTestDriveByID(ctx context.Context, id int) (*domain.TestDrive, error) {
	td, ok := r.drives[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return td, nil
}

func (r *memTestDriveRepo) ListTestDrives(ctx context.Context, filter domain.TestDriveFilter) ([]*domain.TestDrive, error) {
	var out []*domain.TestDrive
	for _, td := range r.drives {
		out = append(out, td)
	}
	return out, nil
}

func (r *memTestDriveRepo) FindActiveBySlot(ctx context.Context, carName, date, slot string) (bool, error) {
	for _, td := range r.drives {
		if td.CarName == carName && td.Date == date && td.Time == slot && td.Status != domain.StatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (r *memTestDriveRepo) UpdateStatus(ctx context.Context, id int, status domain.BookingStatus) error {
	td, ok := r.drives[id]
	if !ok {
		return domain.ErrNotFound
	}
	td.Status = status
	return nil
}

func (r *memTestDriveRepo) DeleteTestDrive(ctx context.Context, id int) error {
	if _, ok := r.drives[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.drives, id)
	return nil
}

// nextBusinessDay returns the next weekday strictly after today, so the
// past-date and weekend rules never fire on a valid request.
func nextBusinessDay() string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(domain.DateLayout)
}

func newBookingRequest() *domain.TestDrive {
	return &domain.TestDrive{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "5551234567",
		Date:    nextBusinessDay(),
		Time:    "10:00",
		CarName: "BMW X5",
	}
}

func TestScheduleStoresPendingBooking(t *testing.T) {
	repo := newMemTestDriveRepo()
	svc := NewTestDriveService(repo, nopLogger{}, validator.New())

	created, err := svc.Schedule(context.Background(), newBookingRequest())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.StatusPending, created.Status)

	stored, err := repo.GetTestDriveByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "BMW X5", stored.CarName)
}

func TestScheduleRejectsRuleViolation(t *testing.T) {
	repo := newMemTestDriveRepo()
	svc := NewTestDriveService(repo, nopLogger{}, validator.New())

	td := newBookingRequest()
	td.Phone = "123"

	_, err := svc.Schedule(context.Background(), td)
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Phone number must be numeric (8-15 digits)", vErr.Reason)
	assert.Empty(t, repo.drives)
}

func TestScheduleRejectsTakenSlot(t *testing.T) {
	repo := newMemTestDriveRepo()
	svc := NewTestDriveService(repo, nopLogger{}, validator.New())
	ctx := context.Background()

	first, err := svc.Schedule(ctx, newBookingRequest())
	require.NoError(t, err)

	second := newBookingRequest()
	second.Name = "John Smith"
	second.Email = "john@example.com"
	_, err = svc.Schedule(ctx, second)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	// A different car, day or hour is a different slot.
	otherCar := newBookingRequest()
	otherCar.CarName = "Audi RS7"
	_, err = svc.Schedule(ctx, otherCar)
	assert.NoError(t, err)

	otherHour := newBookingRequest()
	otherHour.Time = "11:00"
	_, err = svc.Schedule(ctx, otherHour)
	assert.NoError(t, err)

	// Cancelling frees the slot for rebooking.
	require.NoError(t, svc.UpdateStatus(ctx, first.ID, "cancelled"))
	_, err = svc.Schedule(ctx, newBookingRequest())
	assert.NoError(t, err)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := newMemTestDriveRepo()
	svc := NewTestDriveService(repo, nopLogger{}, validator.New())
	ctx := context.Background()

	created, err := svc.Schedule(ctx, newBookingRequest())
	require.NoError(t, err)

	err = svc.UpdateStatus(ctx, created.ID, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	require.NoError(t, svc.UpdateStatus(ctx, created.ID, "confirmed"))
	stored, err := svc.GetTestDriveByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
}
