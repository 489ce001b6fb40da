package ticket

import (
	"fmt"
	"time"

	"propdesk/internal/domain/shared/events"
)

const (
	EventTypeTicketSubmitted       = "ticket.submitted"
	EventTypeTicketTriageCompleted = "ticket.triage.completed"
	EventTypeTicketTriageFailed    = "ticket.triage.failed"
	EventTypeContractorEmailSent   = "ticket.contractor_email.sent"
)

type TicketSubmittedEvent struct {
	events.BaseEvent
	TicketID   uint   `json:"ticket_id"`
	TenantID   uint   `json:"tenant_id"`
	Reference  string `json:"reference"`
	TicketType string `json:"ticket_type"`
	Urgency    string `json:"urgency"`
}

func NewTicketSubmittedEvent(ticketID, tenantID uint, reference, ticketType, urgency string) TicketSubmittedEvent {
	return TicketSubmittedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket:%d", ticketID),
			EventType:   EventTypeTicketSubmitted,
			OccurredAt:  time.Now(),
		},
		TicketID:   ticketID,
		TenantID:   tenantID,
		Reference:  reference,
		TicketType: ticketType,
		Urgency:    urgency,
	}
}

type TicketTriageCompletedEvent struct {
	events.BaseEvent
	TicketID  uint   `json:"ticket_id"`
	TenantID  uint   `json:"tenant_id"`
	Reference string `json:"reference"`
	Category  string `json:"category"`
	Urgency   string `json:"urgency"`
}

func NewTicketTriageCompletedEvent(ticketID, tenantID uint, reference, category, urgency string) TicketTriageCompletedEvent {
	return TicketTriageCompletedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket:%d", ticketID),
			EventType:   EventTypeTicketTriageCompleted,
			OccurredAt:  time.Now(),
		},
		TicketID:  ticketID,
		TenantID:  tenantID,
		Reference: reference,
		Category:  category,
		Urgency:   urgency,
	}
}

type TicketTriageFailedEvent struct {
	events.BaseEvent
	TicketID uint   `json:"ticket_id"`
	TenantID uint   `json:"tenant_id"`
	Reason   string `json:"reason"`
	Attempts int    `json:"attempts"`
}

func NewTicketTriageFailedEvent(ticketID, tenantID uint, reason string, attempts int) TicketTriageFailedEvent {
	return TicketTriageFailedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket:%d", ticketID),
			EventType:   EventTypeTicketTriageFailed,
			OccurredAt:  time.Now(),
		},
		TicketID: ticketID,
		TenantID: tenantID,
		Reason:   reason,
		Attempts: attempts,
	}
}

type ContractorEmailSentEvent struct {
	events.BaseEvent
	TicketID       uint   `json:"ticket_id"`
	TenantID       uint   `json:"tenant_id"`
	Reference      string `json:"reference"`
	ContractorID   string `json:"contractor_id"`
	ContractorName string `json:"contractor_name"`
	Recipient      string `json:"recipient"`
}

func NewContractorEmailSentEvent(ticketID, tenantID uint, reference, contractorID, contractorName, recipient string) ContractorEmailSentEvent {
	return ContractorEmailSentEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket:%d", ticketID),
			EventType:   EventTypeContractorEmailSent,
			OccurredAt:  time.Now(),
		},
		TicketID:       ticketID,
		TenantID:       tenantID,
		Reference:      reference,
		ContractorID:   contractorID,
		ContractorName: contractorName,
		Recipient:      recipient,
	}
}
