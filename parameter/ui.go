package parameter

import "time"

// Screen flow delays
const (
	PlayRequestDelay     = 50 * time.Millisecond
	ContinueRequestDelay = 100 * time.Millisecond
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "skyfall.log"
	MaxLogSize  = 10 * 1024 * 1024
)
