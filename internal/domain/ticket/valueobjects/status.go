package valueobjects

import "fmt"

type TicketStatus string

const (
	// StatusAIProcessing means the triage pipeline has been queued or is running.
	StatusAIProcessing TicketStatus = "ai_processing"
	// StatusReady means triage completed and the ticket awaits staff action.
	StatusReady              TicketStatus = "ready"
	StatusInProgress         TicketStatus = "in_progress"
	StatusAwaitingContractor TicketStatus = "awaiting_contractor"
	StatusResolved           TicketStatus = "resolved"
	StatusClosed             TicketStatus = "closed"
	StatusReopened           TicketStatus = "reopened"
	// StatusTriageFailed is set by the queue consumer once triage retries are exhausted,
	// so a ticket is never silently stuck in ai_processing.
	StatusTriageFailed TicketStatus = "triage_failed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusAIProcessing:       true,
	StatusReady:              true,
	StatusInProgress:         true,
	StatusAwaitingContractor: true,
	StatusResolved:           true,
	StatusClosed:             true,
	StatusReopened:           true,
	StatusTriageFailed:       true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusAIProcessing: {
		StatusReady,
		StatusTriageFailed,
		StatusClosed,
	},
	StatusReady: {
		StatusInProgress,
		StatusAwaitingContractor,
		StatusAIProcessing,
		StatusResolved,
		StatusClosed,
	},
	StatusInProgress: {
		StatusAwaitingContractor,
		StatusAIProcessing,
		StatusResolved,
		StatusClosed,
	},
	StatusAwaitingContractor: {
		StatusInProgress,
		StatusAIProcessing,
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusClosed,
		StatusReopened,
	},
	StatusClosed: {
		StatusReopened,
	},
	StatusReopened: {
		StatusInProgress,
		StatusAIProcessing,
		StatusResolved,
		StatusClosed,
	},
	StatusTriageFailed: {
		StatusAIProcessing,
		StatusInProgress,
		StatusClosed,
	},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsAIProcessing() bool {
	return ts == StatusAIProcessing
}

func (ts TicketStatus) IsReady() bool {
	return ts == StatusReady
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func (ts TicketStatus) IsTriageFailed() bool {
	return ts == StatusTriageFailed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
