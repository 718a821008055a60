package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ACBRI/veritas.ia/pkg/e"
)

// BoundingBox is an axis-aligned lat/lng rectangle. Immutable, compared by value.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// NewBoundingBox validates the bounds: each within lat/lng range and max
// strictly greater than min on both axes.
func NewBoundingBox(minLat, minLon, maxLat, maxLon float64) (BoundingBox, error) {
	if minLat < -90 || minLat > 90 || maxLat < -90 || maxLat > 90 {
		return BoundingBox{}, fmt.Errorf("latitude bounds out of range [-90,90]: %w", e.ErrInvalidBoundingBox)
	}
	if minLon < -180 || minLon > 180 || maxLon < -180 || maxLon > 180 {
		return BoundingBox{}, fmt.Errorf("longitude bounds out of range [-180,180]: %w", e.ErrInvalidBoundingBox)
	}
	if maxLat <= minLat {
		return BoundingBox{}, fmt.Errorf("max_lat must be greater than min_lat: %w", e.ErrInvalidBoundingBox)
	}
	if maxLon <= minLon {
		return BoundingBox{}, fmt.Errorf("max_lon must be greater than min_lon: %w", e.ErrInvalidBoundingBox)
	}
	return BoundingBox{MinLat: minLat, MinLon: minLon, MaxLat: maxLat, MaxLon: maxLon}, nil
}

// ParseBoundingBox parses the wire form "minLat,minLon,maxLat,maxLon" used by
// the live channel's bbox query parameter.
func ParseBoundingBox(s string) (BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BoundingBox{}, fmt.Errorf("bbox must be \"minLat,minLon,maxLat,maxLon\": %w", e.ErrInvalidBoundingBox)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BoundingBox{}, fmt.Errorf("bbox component %q is not a number: %w", p, e.ErrInvalidBoundingBox)
		}
		vals[i] = v
	}
	return NewBoundingBox(vals[0], vals[1], vals[2], vals[3])
}

// Contains reports whether the point lies inside the box, inclusive on all
// four edges. The store-side range query must agree with this predicate.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lng >= b.MinLon && lng <= b.MaxLon
}
