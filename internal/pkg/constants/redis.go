package constants

// Redis key formats
const (
	KeyApprovalTokenUsed = "approval:token:used:%s" // Format: approval:token:used:{jti}
	KeyEmployee          = "directory:employee:%s"  // Format: directory:employee:{employee_id}
	KeyNotificationRetry = "notifications:retry"    // List of queued messages that failed to send
	KeySweepLock         = "lock:approval:sweep"    // Held while a timeout sweep runs
)
