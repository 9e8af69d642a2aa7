package components

import "github.com/lixenwraith/rocket-range/catalog"

// Projectile is the unnamed base shape of missiles and drones
type Projectile struct {
	Kinetics
}

// NewProjectile builds a projectile on the ground at position
func NewProjectile(position float64) *Projectile {
	return &Projectile{Kinetics: NewKinetics(position)}
}

// Missile is a projectile fired at orbital objects
type Missile struct {
	Projectile
	Target *catalog.Object // set once the missile hits something
}

// NewMissile builds a missile at position
func NewMissile(position float64) *Missile {
	return &Missile{Projectile: *NewProjectile(position)}
}

// CleanupDrone is a projectile that grabs dead satellites out of orbit
type CleanupDrone struct {
	Projectile
	Satellite *catalog.Object // grabbed object, nil while empty-handed
}

// NewCleanupDrone builds a drone at position
func NewCleanupDrone(position float64) *CleanupDrone {
	return &CleanupDrone{Projectile: *NewProjectile(position)}
}
