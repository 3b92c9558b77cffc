package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// GeoLatitudeMin is the minimum valid latitude in decimal degrees.
	GeoLatitudeMin = -90.0
	// GeoLatitudeMax is the maximum valid latitude in decimal degrees.
	GeoLatitudeMax = 90.0
	// GeoLongitudeMin is the minimum valid longitude in decimal degrees.
	GeoLongitudeMin = -180.0
	// GeoLongitudeMax is the maximum valid longitude in decimal degrees.
	GeoLongitudeMax = 180.0
)

// ErrGeoLocationIsNotConstructed is returned when attempting to use an
// improperly initialized GeoLocation. Locations must be created using the
// NewGeoLocation constructor to ensure coordinate validity.
var ErrGeoLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"geo location must be created via NewGeoLocation constructor")

// GeoLocation represents a point on the globe with validated coordinates.
// GeoLocation is an immutable value object that ensures latitude and longitude
// are always within valid bounds. The zero value is invalid and will fail
// validation - use the constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewGeoLocation(31.2001, 29.9187)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Location: %s", loc) // Output: GeoLocation(31.2001,29.9187)
type GeoLocation struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoLocation creates a new GeoLocation with the specified coordinates.
// Latitude must be within [GeoLatitudeMin..GeoLatitudeMax] and longitude
// within [GeoLongitudeMin..GeoLongitudeMax]. Returns an error if either
// coordinate is outside the valid bounds.
func NewGeoLocation(latitude float64, longitude float64) (GeoLocation, error) {
	loc := GeoLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return GeoLocation{}, err
	}

	return loc, nil
}

// Validate checks if the GeoLocation was properly constructed.
// The zero value is invalid and will fail this validation.
func (l GeoLocation) Validate() error {
	return l.guard.Validate(ErrGeoLocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (l GeoLocation) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l GeoLocation) Longitude() float64 {
	return l.longitude
}

// IsEqual compares two locations coordinate by coordinate.
func (l GeoLocation) IsEqual(other GeoLocation) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

// String returns a human-readable representation of the location.
// Implements the fmt.Stringer interface.
func (l GeoLocation) String() string {
	return fmt.Sprintf("GeoLocation(%g,%g)", l.latitude, l.longitude)
}

func (l *GeoLocation) setLatitude(latitude float64) error {
	if latitude < GeoLatitudeMin || latitude > GeoLatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, GeoLatitudeMin, GeoLatitudeMax)
	}
	l.latitude = latitude
	return nil
}

func (l *GeoLocation) setLongitude(longitude float64) error {
	if longitude < GeoLongitudeMin || longitude > GeoLongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, GeoLongitudeMin, GeoLongitudeMax)
	}
	l.longitude = longitude
	return nil
}
