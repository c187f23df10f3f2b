package domain

import (
	"time"
)

type FuelType string

const (
	Gasoline FuelType = "Gasoline"
	Hybrid   FuelType = "Hybrid"
	Electric FuelType = "Electric"
	Diesel   FuelType = "Diesel"
)

type Car struct {
	ID           int        `json:"id"`
	Name         string     `json:"name" validate:"required"`
	Price        float64    `json:"price" validate:"min=0"`
	Year         int        `json:"year" validate:"required,min=1900"`
	Mileage      string     `json:"mileage"`
	Fuel         FuelType   `json:"fuel"`
	Transmission string     `json:"transmission"`
	Rating       float64    `json:"rating" validate:"min=0,max=5"`
	Reviews      int        `json:"reviews" validate:"min=0"`
	Description  string     `json:"description"`
	Images       []CarImage `json:"images,omitempty"`
	Features     []string   `json:"features,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CarImage struct {
	ID           int    `json:"id"`
	CarID        int    `json:"car_id"`
	URL          string `json:"image_url" validate:"required,max=500"`
	IsPrimary    bool   `json:"is_primary"`
	DisplayOrder int    `json:"display_order"`
}

// ImageURLs returns the image links in display order, primary first
// when orders collide.
func (c *Car) ImageURLs() []string {
	urls := make([]string, len(c.Images))
	for i, img := range c.Images {
		urls[i] = img.URL
	}
	return urls
}

// CarFilter is a conjunctive catalog filter; nil/empty members are
// unconstrained. Make matches as a substring of the full car name.
type CarFilter struct {
	Make     string
	Year     *int
	MinPrice *float64
	MaxPrice *float64
	Fuel     string
}
