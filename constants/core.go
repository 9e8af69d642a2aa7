package constants

import "time"

// Host Loop Timing
const (
	// FrameUpdateInterval is the terminal rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// HeadlessStep is the virtual clock step used by the headless host
	HeadlessStep = 50 * time.Millisecond

	// HeadlessMaxDuration bounds a headless run; a scene still busy after this is an error
	HeadlessMaxDuration = 10 * time.Minute

	// StreamFrameInterval is the websocket frame broadcast interval
	StreamFrameInterval = 50 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
