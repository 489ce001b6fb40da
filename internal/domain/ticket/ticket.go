package ticket

import (
	"fmt"
	"time"

	vo "propdesk/internal/domain/ticket/valueobjects"
)

// Ticket is a maintenance/damage report tracked through a status lifecycle.
// Tickets are never deleted; they form the audit trail of a tenant's
// maintenance history.
type Ticket struct {
	id                uint
	tenantID          uint
	reference         string
	ticketType        vo.TicketType
	status            vo.TicketStatus
	urgency           vo.Urgency
	category          *vo.Category
	description       string
	reporterName      string
	reporterEmail     string
	reporterPhone     string
	propertyID        *uint
	unitLabel         string
	permissionToEnter bool
	createdAt         time.Time
	updatedAt         time.Time
	messages          []*Message
}

func NewTicket(
	tenantID uint,
	ticketType vo.TicketType,
	description string,
	reportedUrgency vo.Urgency,
	reporterName, reporterEmail, reporterPhone string,
	propertyID *uint,
	unitLabel string,
	permissionToEnter bool,
) (*Ticket, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !reportedUrgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency")
	}
	if len(reporterName) == 0 {
		return nil, fmt.Errorf("reporter name is required")
	}

	now := time.Now()
	return &Ticket{
		tenantID:          tenantID,
		ticketType:        ticketType,
		status:            vo.StatusAIProcessing,
		urgency:           reportedUrgency,
		description:       description,
		reporterName:      reporterName,
		reporterEmail:     reporterEmail,
		reporterPhone:     reporterPhone,
		propertyID:        propertyID,
		unitLabel:         unitLabel,
		permissionToEnter: permissionToEnter,
		createdAt:         now,
		updatedAt:         now,
		messages:          []*Message{},
	}, nil
}

func ReconstructTicket(
	id uint,
	tenantID uint,
	reference string,
	ticketType vo.TicketType,
	status vo.TicketStatus,
	urgency vo.Urgency,
	category *vo.Category,
	description string,
	reporterName, reporterEmail, reporterPhone string,
	propertyID *uint,
	unitLabel string,
	permissionToEnter bool,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if len(reference) == 0 {
		return nil, fmt.Errorf("ticket reference is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency")
	}

	return &Ticket{
		id:                id,
		tenantID:          tenantID,
		reference:         reference,
		ticketType:        ticketType,
		status:            status,
		urgency:           urgency,
		category:          category,
		description:       description,
		reporterName:      reporterName,
		reporterEmail:     reporterEmail,
		reporterPhone:     reporterPhone,
		propertyID:        propertyID,
		unitLabel:         unitLabel,
		permissionToEnter: permissionToEnter,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		messages:          []*Message{},
	}, nil
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) TenantID() uint           { return t.tenantID }
func (t *Ticket) Reference() string        { return t.reference }
func (t *Ticket) Type() vo.TicketType      { return t.ticketType }
func (t *Ticket) Status() vo.TicketStatus  { return t.status }
func (t *Ticket) Urgency() vo.Urgency      { return t.urgency }
func (t *Ticket) Category() *vo.Category   { return t.category }
func (t *Ticket) Description() string      { return t.description }
func (t *Ticket) ReporterName() string     { return t.reporterName }
func (t *Ticket) ReporterEmail() string    { return t.reporterEmail }
func (t *Ticket) ReporterPhone() string    { return t.reporterPhone }
func (t *Ticket) PropertyID() *uint        { return t.propertyID }
func (t *Ticket) UnitLabel() string        { return t.unitLabel }
func (t *Ticket) PermissionToEnter() bool  { return t.permissionToEnter }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time     { return t.updatedAt }

func (t *Ticket) Messages() []*Message {
	messagesCopy := make([]*Message, len(t.messages))
	copy(messagesCopy, t.messages)
	return messagesCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetReference(reference string) error {
	if len(t.reference) > 0 {
		return fmt.Errorf("ticket reference is already set")
	}
	if len(reference) == 0 {
		return fmt.Errorf("ticket reference cannot be empty")
	}
	t.reference = reference
	return nil
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	return nil
}

// ApplyTriage overwrites category and urgency with freshly computed values.
// Last write wins; concurrent triage runs are tolerated.
func (t *Ticket) ApplyTriage(category vo.Category, urgency vo.Urgency) error {
	if !category.IsValid() {
		return fmt.Errorf("invalid category: %s", category)
	}
	if !urgency.IsValid() {
		return fmt.Errorf("invalid urgency: %s", urgency)
	}

	t.category = &category
	t.urgency = urgency
	t.updatedAt = time.Now()

	return nil
}

// RequestReprocess moves the ticket back into the triage pipeline. Closed
// tickets cannot be reprocessed.
func (t *Ticket) RequestReprocess() error {
	if t.status.IsClosed() {
		return fmt.Errorf("closed tickets cannot be reprocessed")
	}

	if t.status.IsAIProcessing() {
		return nil
	}

	t.status = vo.StatusAIProcessing
	t.updatedAt = time.Now()

	return nil
}

// MarkTriageFailed records that triage retries are exhausted. Only valid while
// the ticket is still in ai_processing.
func (t *Ticket) MarkTriageFailed() error {
	if !t.status.IsAIProcessing() {
		return fmt.Errorf("only tickets in %s can be marked triage failed", vo.StatusAIProcessing)
	}

	t.status = vo.StatusTriageFailed
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) AddMessage(message *Message) error {
	if message == nil {
		return fmt.Errorf("message cannot be nil")
	}

	if message.TicketID() != t.id {
		return fmt.Errorf("message ticket ID mismatch")
	}

	t.messages = append(t.messages, message)
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) Validate() error {
	if t.tenantID == 0 {
		return fmt.Errorf("tenant ID is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.ticketType.IsValid() {
		return fmt.Errorf("invalid ticket type")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if !t.urgency.IsValid() {
		return fmt.Errorf("invalid urgency")
	}
	if t.category != nil && !t.category.IsValid() {
		return fmt.Errorf("invalid category")
	}
	return nil
}
