package domain

import (
	"errors"
	"testing"

	"github.com/ACBRI/veritas.ia/pkg/e"
)

func TestNewBoundingBox_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                           string
		minLat, minLon, maxLat, maxLon float64
		wantErr                        bool
	}{
		{"valid", 9, 19, 11, 21, false},
		{"max_lat equals min_lat", 10, 19, 10, 21, true},
		{"max_lon below min_lon", 9, 21, 11, 19, true},
		{"lat out of range", -91, 19, 11, 21, true},
		{"lon out of range", 9, 19, 11, 181, true},
		{"whole world", -90, -180, 90, 180, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewBoundingBox(tc.minLat, tc.minLon, tc.maxLat, tc.maxLon)
			if tc.wantErr && !errors.Is(err, e.ErrInvalidBoundingBox) {
				t.Fatalf("expected ErrInvalidBoundingBox got=%v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		})
	}
}

func TestContains_InclusiveEdges(t *testing.T) {
	t.Parallel()

	box, err := NewBoundingBox(9, 19, 11, 21)
	if err != nil {
		t.Fatalf("NewBoundingBox: %v", err)
	}

	cases := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{"center", 10, 20, true},
		{"min corner", 9, 19, true},
		{"max corner", 11, 21, true},
		{"on min_lat edge", 9, 20, true},
		{"on max_lon edge", 10, 21, true},
		{"just below min_lat", 8.999, 20, false},
		{"just above max_lat", 11.001, 20, false},
		{"lng outside", 10, 21.001, false},
		{"far away", -45, -120, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := box.Contains(tc.lat, tc.lng); got != tc.want {
				t.Fatalf("Contains(%v,%v)=%v want=%v", tc.lat, tc.lng, got, tc.want)
			}
		})
	}
}

func TestParseBoundingBox(t *testing.T) {
	t.Parallel()

	box, err := ParseBoundingBox("9,19,11,21")
	if err != nil {
		t.Fatalf("ParseBoundingBox: %v", err)
	}
	want := BoundingBox{MinLat: 9, MinLon: 19, MaxLat: 11, MaxLon: 21}
	if box != want {
		t.Fatalf("got=%+v want=%+v", box, want)
	}

	if _, err := ParseBoundingBox("9, 19, 11, 21"); err != nil {
		t.Fatalf("spaces should be tolerated: %v", err)
	}

	for _, raw := range []string{"", "9,19,11", "9,19,11,21,5", "a,19,11,21", "11,19,9,21"} {
		if _, err := ParseBoundingBox(raw); !errors.Is(err, e.ErrInvalidBoundingBox) {
			t.Fatalf("ParseBoundingBox(%q): expected ErrInvalidBoundingBox got=%v", raw, err)
		}
	}
}
