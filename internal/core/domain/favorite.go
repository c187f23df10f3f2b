package domain

import (
	"time"
)

// Favorite links a catalog user (identified by email, there is no
// session layer) to a car. The (user_email, car_id) pair is unique.
type Favorite struct {
	ID        int       `json:"id"`
	UserEmail string    `json:"user_email" validate:"required,email"`
	CarID     int       `json:"car_id" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteCar is a catalog car joined with the moment it was saved.
type FavoriteCar struct {
	Car
	FavoritedAt time.Time `json:"favorited_at"`
}
