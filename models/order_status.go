package models

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// statusTransitions lists the legal successors for each status.
// completed and cancelled are terminal; there is no reopen path.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether s may move to next. Re-applying the
// current status is allowed and only refreshes the updated_at timestamp.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
