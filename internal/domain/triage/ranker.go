package triage

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"propdesk/internal/domain/contractor"
	"propdesk/internal/domain/property"
	vo "propdesk/internal/domain/ticket/valueobjects"
)

// CandidateSource distinguishes real contractor matches from the synthetic
// fallback entry.
type CandidateSource string

const (
	SourceInternal         CandidateSource = "INTERNAL"
	SourceExternalFallback CandidateSource = "EXTERNAL_FALLBACK"
)

const (
	maxCandidates = 3

	scoreBase         = 50
	scoreTradeMatch   = 30
	scorePropertyLink = 20
	scoreZipMatch     = 15
	scoreCityMatch    = 10
	scoreMax          = 100

	fallbackID    = "external-fallback"
	fallbackName  = "Generic Trade Partner"
	fallbackScore = 60
)

// RankedContractor is one scored dispatch candidate. ID is a string because
// the fallback entry has no database row behind it.
type RankedContractor struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Trade      vo.Category     `json:"trade"`
	MatchScore int             `json:"match_score"`
	Source     CandidateSource `json:"source"`
}

// ContractorRanker finds and scores dispatch candidates for a ticket.
type ContractorRanker interface {
	Rank(ctx context.Context, tenantID uint, category vo.Category, propertyID *uint) ([]RankedContractor, error)
}

// ScoringRanker queries eligible contractors and scores them against the
// ticket's trade and location. A data-access failure propagates; zero matches
// yields exactly one EXTERNAL_FALLBACK entry so staff always have a dispatch
// target.
type ScoringRanker struct {
	contractorRepo contractor.Repository
	propertyRepo   property.Repository
}

func NewScoringRanker(contractorRepo contractor.Repository, propertyRepo property.Repository) *ScoringRanker {
	return &ScoringRanker{
		contractorRepo: contractorRepo,
		propertyRepo:   propertyRepo,
	}
}

func (r *ScoringRanker) Rank(ctx context.Context, tenantID uint, category vo.Category, propertyID *uint) ([]RankedContractor, error) {
	location := r.resolveLocation(ctx, tenantID, propertyID)

	query := contractor.CandidateQuery{
		TenantID:   tenantID,
		Category:   category,
		PropertyID: propertyID,
		ZipCode:    location.ZipCode,
		City:       location.City,
		Limit:      maxCandidates,
	}

	candidates, err := r.contractorRepo.FindCandidates(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}

	if len(candidates) == 0 {
		return []RankedContractor{externalFallback(category)}, nil
	}

	ranked := make([]RankedContractor, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, RankedContractor{
			ID:         strconv.FormatUint(uint64(c.ID()), 10),
			Name:       c.Name(),
			Trade:      category,
			MatchScore: score(c, category, propertyID, location),
			Source:     SourceInternal,
		})
	}

	// Highest score first; candidate cap is already enforced by the query.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	return ranked, nil
}

// resolveLocation looks up the ticket property's zip and city. A missing or
// unreadable property simply contributes no location signal; ranking proceeds
// on the trade match alone.
func (r *ScoringRanker) resolveLocation(ctx context.Context, tenantID uint, propertyID *uint) property.Location {
	if propertyID == nil {
		return property.Location{}
	}

	prop, err := r.propertyRepo.GetByID(ctx, tenantID, *propertyID)
	if err != nil || prop == nil {
		return property.Location{}
	}

	return property.Location{ZipCode: prop.ZipCode(), City: prop.City()}
}

func score(c *contractor.Contractor, category vo.Category, propertyID *uint, location property.Location) int {
	total := scoreBase

	if c.HasTrade(category) {
		total += scoreTradeMatch
	}
	if c.IsLinkedToProperty(propertyID) {
		total += scorePropertyLink
	}
	if location.ZipCode != "" && c.ServicesZip(location.ZipCode) {
		total += scoreZipMatch
	}
	if location.City != "" && c.ServicesCity(location.City) {
		total += scoreCityMatch
	}

	if total > scoreMax {
		total = scoreMax
	}
	return total
}

func externalFallback(category vo.Category) RankedContractor {
	return RankedContractor{
		ID:         fallbackID,
		Name:       fallbackName,
		Trade:      category,
		MatchScore: fallbackScore,
		Source:     SourceExternalFallback,
	}
}
