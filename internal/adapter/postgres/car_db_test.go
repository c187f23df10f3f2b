package postgres

import (
	"testing"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestBuildCarFilter(t *testing.T) {
	tests := []struct {
		name       string
		filter     domain.CarFilter
		wantClause string
		wantArgs   []interface{}
	}{
		{
			name:       "no filters",
			filter:     domain.CarFilter{},
			wantClause: "",
			wantArgs:   nil,
		},
		{
			name:       "make is a substring match on the name",
			filter:     domain.CarFilter{Make: "BMW"},
			wantClause: " AND name LIKE $1",
			wantArgs:   []interface{}{"%BMW%"},
		},
		{
			name:       "year",
			filter:     domain.CarFilter{Year: intPtr(2023)},
			wantClause: " AND year = $1",
			wantArgs:   []interface{}{2023},
		},
		{
			name:       "price range",
			filter:     domain.CarFilter{MinPrice: floatPtr(50000), MaxPrice: floatPtr(90000)},
			wantClause: " AND price >= $1 AND price <= $2",
			wantArgs:   []interface{}{50000.0, 90000.0},
		},
		{
			name: "all filters keep placeholder numbering in order",
			filter: domain.CarFilter{
				Make:     "Porsche",
				Year:     intPtr(2024),
				MinPrice: floatPtr(100000),
				MaxPrice: floatPtr(150000),
				Fuel:     "Gasoline",
			},
			wantClause: " AND name LIKE $1 AND year = $2 AND price >= $3 AND price <= $4 AND fuel = $5",
			wantArgs:   []interface{}{"%Porsche%", 2024, 100000.0, 150000.0, "Gasoline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := buildCarFilter(tt.filter)
			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
