package constants

import "time"

// UI Layout Constants
const (
	// StatusBarHeight is the bottom status row
	StatusBarHeight = 1

	// NarrationLines is the number of transcript lines shown under the view
	NarrationLines = 4

	// MinViewHeight keeps the launch band usable on tiny terminals
	MinViewHeight = 8
)

// UI Timing Constants
const (
	// IdleAdvanceDelay is how long an idle page stays up before auto advancing (0 disables)
	IdleAdvanceDelay = 0 * time.Second

	// InputChannelSize buffers terminal events between the poll goroutine and the loop
	InputChannelSize = 100
)
