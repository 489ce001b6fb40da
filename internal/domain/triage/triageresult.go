package triage

import (
	"fmt"
	"time"

	vo "propdesk/internal/domain/ticket/valueobjects"
)

// TriageResult is one immutable pipeline run for a ticket. Reprocessing adds
// new rows; the latest row by creation time is authoritative.
type TriageResult struct {
	id        uint
	ticketID  uint
	category  vo.Category
	urgency   vo.Urgency
	ranked    []RankedContractor
	draftText string
	createdAt time.Time
}

func NewTriageResult(
	ticketID uint,
	category vo.Category,
	urgency vo.Urgency,
	ranked []RankedContractor,
	draftText string,
) (*TriageResult, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency: %s", urgency)
	}
	if len(ranked) == 0 {
		return nil, fmt.Errorf("ranked contractor list cannot be empty")
	}

	rankedCopy := make([]RankedContractor, len(ranked))
	copy(rankedCopy, ranked)

	return &TriageResult{
		ticketID:  ticketID,
		category:  category,
		urgency:   urgency,
		ranked:    rankedCopy,
		draftText: draftText,
		createdAt: time.Now(),
	}, nil
}

func ReconstructTriageResult(
	id uint,
	ticketID uint,
	category vo.Category,
	urgency vo.Urgency,
	ranked []RankedContractor,
	draftText string,
	createdAt time.Time,
) (*TriageResult, error) {
	if id == 0 {
		return nil, fmt.Errorf("triage result ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &TriageResult{
		id:        id,
		ticketID:  ticketID,
		category:  category,
		urgency:   urgency,
		ranked:    ranked,
		draftText: draftText,
		createdAt: createdAt,
	}, nil
}

func (r *TriageResult) ID() uint             { return r.id }
func (r *TriageResult) TicketID() uint       { return r.ticketID }
func (r *TriageResult) Category() vo.Category { return r.category }
func (r *TriageResult) Urgency() vo.Urgency  { return r.urgency }
func (r *TriageResult) DraftText() string    { return r.draftText }
func (r *TriageResult) CreatedAt() time.Time { return r.createdAt }

func (r *TriageResult) RankedContractors() []RankedContractor {
	rankedCopy := make([]RankedContractor, len(r.ranked))
	copy(rankedCopy, r.ranked)
	return rankedCopy
}

// TopContractor returns the highest-ranked candidate. The list is never
// empty for a persisted result.
func (r *TriageResult) TopContractor() *RankedContractor {
	if len(r.ranked) == 0 {
		return nil
	}
	top := r.ranked[0]
	return &top
}

func (r *TriageResult) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("triage result ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("triage result ID cannot be zero")
	}
	r.id = id
	return nil
}
