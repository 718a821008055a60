package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ACBRI/veritas.ia/pkg/e"
)

// ReportTTL is the fixed lifetime of every report. Not configurable per report.
const ReportTTL = 24 * time.Hour

// Coordinates is a geographic point with an optional GPS accuracy radius in meters.
type Coordinates struct {
	Latitude  float64  `json:"latitude" validate:"lat"`
	Longitude float64  `json:"longitude" validate:"lng"`
	Accuracy  *float64 `json:"accuracy,omitempty" validate:"omitempty,gt=0"`
}

// Report is an anonymous point-in-time incident claim. Everything except
// ConfirmationCount and IsActive is immutable once created.
type Report struct {
	ID                uuid.UUID   `json:"id"`
	OffenseTypeID     int         `json:"offense_type_id"`
	Coordinates       Coordinates `json:"coordinates"`
	CreatedAt         time.Time   `json:"created_at"`
	ExpiresAt         time.Time   `json:"expires_at"`
	ConfirmationCount int         `json:"confirmation_count"`
	IsActive          bool        `json:"is_active"`
}

// NewReport validates the coordinates and builds a fresh report with
// expires_at pinned to created_at + ReportTTL.
func NewReport(offenseTypeID int, lat, lng float64, accuracy *float64) (*Report, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("latitude %v out of range [-90,90]: %w", lat, e.ErrInvalidCoordinates)
	}
	if lng < -180 || lng > 180 {
		return nil, fmt.Errorf("longitude %v out of range [-180,180]: %w", lng, e.ErrInvalidCoordinates)
	}
	if accuracy != nil && *accuracy <= 0 {
		return nil, fmt.Errorf("accuracy must be positive: %w", e.ErrInvalidInput)
	}

	now := time.Now().UTC()
	return &Report{
		ID:            uuid.New(),
		OffenseTypeID: offenseTypeID,
		Coordinates: Coordinates{
			Latitude:  lat,
			Longitude: lng,
			Accuracy:  accuracy,
		},
		CreatedAt:         now,
		ExpiresAt:         now.Add(ReportTTL),
		ConfirmationCount: 0,
		IsActive:          true,
	}, nil
}

// ActiveAt is the single source of truth for report liveness. Expiry is a
// query-time predicate, never a state transition.
func (r *Report) ActiveAt(now time.Time) bool {
	return r.IsActive && now.Before(r.ExpiresAt)
}

// Confirmed returns a copy with the confirmation count incremented.
// ExpiresAt and IsActive are untouched; confirming an expired report is
// allowed here and left to calling policy to reject if needed.
func (r *Report) Confirmed() *Report {
	c := *r
	c.ConfirmationCount++
	return &c
}
