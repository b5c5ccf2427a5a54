package reservation

type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusReadyForPickup Status = "ready_for_pickup"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is one of the five enumerated statuses.
// Every status is reachable from every other; pending is the sole
// initial state and there is no terminal lock-out.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusReadyForPickup, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
