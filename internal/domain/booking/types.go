package booking

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// HoldsSlot reports whether a booking in this state blocks its window.
// Pending bookings hold their window until approved or rejected.
func (s Status) HoldsSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// InitialStatus is the state a new booking starts in.
func InitialStatus(approvalRequired bool) Status {
	if approvalRequired {
		return StatusPending
	}
	return StatusConfirmed
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

// CanTransition reports whether a caller may move a booking from one state to another.
// Staying put is not a transition. COMPLETED is only reached through the finalizer.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// HeldStatuses lists the states that take part in conflict detection.
func HeldStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}
