package models

type statusLabel struct {
	status TripStatus
	label  string
}

// tripStatusLabels must hold exactly one entry per TripStatuses element.
var tripStatusLabels = [...]statusLabel{
	{TripStatusPendingApproval, "Waiting for manager approval"},
	{TripStatusPendingUrgent, "Urgent: waiting for manager approval"},
	{TripStatusAutoApproved, "Approved automatically"},
	{TripStatusApproved, "Approved"},
	{TripStatusApprovedSolo, "Approved for solo travel"},
	{TripStatusOptimized, "Consolidated into a shared vehicle"},
	{TripStatusRejected, "Rejected"},
	{TripStatusCancelled, "Cancelled"},
	{TripStatusExpired, "Approval window expired"},
}

// Fails to compile when the label table and the status list differ in length.
const _ = uint(len(tripStatusLabels)-len(TripStatuses)) + uint(len(TripStatuses)-len(tripStatusLabels))

// Label returns the human readable label for a trip status. Unknown
// statuses have no label.
func (s TripStatus) Label() string {
	for _, l := range tripStatusLabels {
		if l.status == s {
			return l.label
		}
	}
	return ""
}
