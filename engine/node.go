package engine

import (
	"github.com/lixenwraith/rocket-range/catalog"
)

// NodeKind distinguishes catalog sprites from effect overlays
type NodeKind uint8

const (
	NodeSprite NodeKind = iota
	NodeCrash
	NodeCollision
)

func (k NodeKind) String() string {
	switch k {
	case NodeCrash:
		return "crash"
	case NodeCollision:
		return "collision"
	default:
		return "sprite"
	}
}

// Node is one drawable in the live view. Coordinates are normalized with
// the origin at the bottom left; Y is the sprite base.
type Node struct {
	ID     int
	Kind   NodeKind
	Object catalog.Object
	X, Y   float64
	// Offset shifts the drawn sprite without moving its logical altitude
	Offset float64
	Alpha  float64
	Size   float64 // live view pixels
	Dimmed bool    // dead satellite tint
	Shield bool    // aura around a shielded rocket
}

// DrawY returns the rendered base altitude
func (n Node) DrawY() float64 {
	return n.Y + n.Offset
}

// Visible reports whether the node contributes to a frame
func (n Node) Visible() bool {
	return n.Alpha > 0.0
}
