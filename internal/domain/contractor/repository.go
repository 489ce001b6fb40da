package contractor

import (
	"context"

	vo "propdesk/internal/domain/ticket/valueobjects"
)

// CandidateQuery describes the eligibility filter for contractor matching:
// trade tag must contain the category AND at least one of the location
// branches (explicit property link, serviced zip, serviced city) must match.
// Branches without a usable value are dead: they never match anything.
type CandidateQuery struct {
	TenantID   uint
	Category   vo.Category
	PropertyID *uint
	ZipCode    string
	City       string
	Limit      int
}

// HasUsableBranch reports whether any OR branch of the location filter can
// match at all. With no usable branch the query must return zero candidates
// rather than degenerate to "match everything".
func (q CandidateQuery) HasUsableBranch() bool {
	return q.PropertyID != nil || q.ZipCode != "" || q.City != ""
}

type Repository interface {
	Save(ctx context.Context, c *Contractor) error
	Update(ctx context.Context, c *Contractor) error
	Delete(ctx context.Context, tenantID, contractorID uint) error
	GetByID(ctx context.Context, tenantID, contractorID uint) (*Contractor, error)
	List(ctx context.Context, tenantID uint, page, pageSize int) ([]*Contractor, int64, error)

	// FindCandidates returns contractors matching the eligibility filter,
	// ordered by id ascending, capped at query.Limit. Data-access errors
	// propagate; an empty result is not an error.
	FindCandidates(ctx context.Context, query CandidateQuery) ([]*Contractor, error)
}
