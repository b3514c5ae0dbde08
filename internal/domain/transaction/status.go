package transaction

// ===============================
// Transaction Status
// ===============================

// Status is an open set: known values get constants, anything else passes
// through unchanged and no transition table is enforced.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// StatusOrDefault keeps the caller's value when present, otherwise the
// initial status.
func StatusOrDefault(s string) string {
	if s == "" {
		return string(InitialStatus())
	}
	return s
}
