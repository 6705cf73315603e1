// Package place is a read-only view of the place catalog.
package place

import (
	"context"

	"github.com/tripline/tripline/internal/shared/errors"
)

var ErrPlaceNotFound = errors.NewNotFoundError("place not found")

// Place is the subset of catalog attributes the itinerary needs.
type Place struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Category  string  `json:"category"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Lookup resolves places by ID. GetByID returns (nil, nil) when absent.
type Lookup interface {
	GetByID(ctx context.Context, placeID uint) (*Place, error)
}
