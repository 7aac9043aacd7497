package checkout

// Status is a checkout attempt's position in its state machine:
//
//	Idle -> Consolidating -> Reserving -> {Committed | Rejected}
//
// with EmptyTrolley as a distinct terminal short-circuit taken before any
// reservation is attempted. Every Checkout call starts fresh from Idle.
type Status string

const (
	StatusIdle          Status = "IDLE"
	StatusConsolidating Status = "CONSOLIDATING"
	StatusReserving     Status = "RESERVING"
	StatusCommitted     Status = "COMMITTED"
	StatusRejected      Status = "REJECTED"
	StatusEmptyTrolley  Status = "EMPTY_TROLLEY"
)

func (s Status) IsTerminal() bool {
	return s == StatusCommitted || s == StatusRejected || s == StatusEmptyTrolley
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

var transitions = map[Status][]Status{
	StatusIdle:          {StatusConsolidating, StatusEmptyTrolley},
	StatusConsolidating: {StatusReserving},
	StatusReserving:     {StatusCommitted, StatusRejected},
}

func CanTransitionTo(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
