package reservation

// Status represents the lifecycle state of a reservation.
type Status string

const (
	StatusPendingPayment      Status = "pending_payment"
	StatusWaitingVerification Status = "waiting_verification"
	StatusConfirmed           Status = "confirmed"
	StatusCancelled           Status = "cancelled"
)

// validTransitions defines the lifecycle state machine. Cancellation is
// reachable from every non-terminal state; nothing leaves cancelled.
var validTransitions = map[Status][]Status{
	StatusPendingPayment:      {StatusWaitingVerification, StatusCancelled},
	StatusWaitingVerification: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:           {StatusCancelled},
	StatusCancelled:           {},
}

// IsValid reports whether s is a recognized reservation status.
func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s Status) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}
