package constants

// NATS subjects for domain events, published after commit
const (
	SubjectTripSubmitted     = "trip.submitted"
	SubjectTripStatusChanged = "trip.status_changed"

	SubjectOptimizationProposed = "optimization.proposed"
	SubjectOptimizationApproved = "optimization.approved"
	SubjectOptimizationRejected = "optimization.rejected"

	SubjectJoinRequested = "join.requested"
	SubjectJoinApproved  = "join.approved"
	SubjectJoinRejected  = "join.rejected"
	SubjectJoinCancelled = "join.cancelled"
)
