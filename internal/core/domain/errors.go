package domain

import (
	"errors"
)

var (
	// ErrNotFound covers unknown ids and emails across all entities.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateFavorite: the (user_email, car_id) pair already exists.
	ErrDuplicateFavorite = errors.New("car already in favorites")

	// ErrSlotTaken: a non-cancelled booking already holds the
	// (car, date, time) combination.
	ErrSlotTaken = errors.New("this slot is already booked")

	// ErrInvalidStatus: a status value outside the entity's enum.
	ErrInvalidStatus = errors.New("invalid status value")
)
