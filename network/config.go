package network

import (
	"time"

	"github.com/lixenwraith/rocket-range/constants"
)

// Config holds stream host configuration
type Config struct {
	// Address to bind
	Address string

	// Path serving the websocket endpoint
	Path string

	// Connection limits
	MaxPeers int

	// Timing
	FrameInterval time.Duration
	WriteTimeout  time.Duration
	PingInterval  time.Duration
	PongTimeout   time.Duration

	// Scene time per wall time
	TimeScale float64

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
}

// DefaultConfig returns local-playground defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         ":7777",
		Path:            "/scene",
		MaxPeers:        16,
		FrameInterval:   constants.StreamFrameInterval,
		WriteTimeout:    5 * time.Second,
		PingInterval:    10 * time.Second,
		PongTimeout:     30 * time.Second,
		TimeScale:       1.0,
		ReadBufferSize:  4 * 1024,
		WriteBufferSize: 64 * 1024,
		SendQueueSize:   256,
	}
}

// DebugConfig returns defaults bound to addr
func DebugConfig(addr string) *Config {
	cfg := DefaultConfig()
	cfg.Address = addr
	return cfg
}
