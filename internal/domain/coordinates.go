package domain

import "fmt"

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate reports whether the coordinates lie inside the WGS-84 degree ranges.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidConfig, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidConfig, c.Lon)
	}
	return nil
}

// Return coordinates as [lat, lon] for rendering collaborators.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lat, c.Lon} }
