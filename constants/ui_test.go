package constants

import (
	"math"
	"testing"
)

// TestDroneLayoutCount verifies the drone spacing yields twelve launch positions
func TestDroneLayoutCount(t *testing.T) {
	count := 0
	for p := DroneFirstPosition; p <= DroneLastPosition+1e-9; p += DroneSpacing {
		count++
	}
	if count != 12 {
		t.Errorf("Expected 12 drone positions, got %d", count)
	}
}

// TestFullBurnAltitude verifies a full tank lifts an entity to altitude 10
func TestFullBurnAltitude(t *testing.T) {
	steps := FuelFull / FuelBurnPerStep
	altitude := steps * AltitudePerStep
	if math.Abs(altitude-10.0) > 1e-9 {
		t.Errorf("Expected full burn altitude 10.0, got %f", altitude)
	}
}
