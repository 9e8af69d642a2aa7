package constants

// Entity initial state
const (
	// FuelFull is the fuel level every entity is built with
	FuelFull = 100.0

	// LaunchPosition is the default horizontal pad position
	LaunchPosition = 0.5
)

// Flight step
const (
	// FuelBurnPerStep is the fuel consumed per flight step
	FuelBurnPerStep = 1.0

	// AltitudePerStep is the altitude gained per flight step
	AltitudePerStep = 0.1

	// CruiseSpeed is the nominal speed while burning
	CruiseSpeed = 1.0
)

// Shield
const (
	// ShieldHealth is the number of hits a fresh shield absorbs
	ShieldHealth = 3
)

// Cleanup drones
const (
	// DroneParkAltitude is where drones are parked above the field before tracking
	DroneParkAltitude = 1.1

	// DroneFirstPosition, DroneSpacing and DroneLastPosition lay out the drone army
	DroneFirstPosition = 0.05
	DroneSpacing       = 0.08
	DroneLastPosition  = 0.96
)
