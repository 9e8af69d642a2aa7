package events

import (
	"github.com/lixenwraith/rocket-range/catalog"
)

// PagePayload identifies a page run
type PagePayload struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// ObjectPayload describes a catalog object in the scene
type ObjectPayload struct {
	Object   catalog.Object `json:"object"`
	Position float64        `json:"position"`
	Altitude float64        `json:"altitude"`
	Alive    bool           `json:"alive"`
}

// LaunchPayload describes a moving sprite's flight
type LaunchPayload struct {
	Object   catalog.Object `json:"object"`
	Position float64        `json:"position"`
	From     float64        `json:"from"`
	To       float64        `json:"to"`
	Shield   bool           `json:"shield,omitempty"`
}

// EffectPayload locates a crash or collision effect
type EffectPayload struct {
	Position float64 `json:"position"`
	Altitude float64 `json:"altitude"`
}
