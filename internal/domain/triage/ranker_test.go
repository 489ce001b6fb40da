package triage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdesk/internal/domain/contractor"
	"propdesk/internal/domain/property"
	vo "propdesk/internal/domain/ticket/valueobjects"
)

func testContractor(t *testing.T, id uint, name string, trades []vo.Category, zips, cities []string, propertyIDs []uint) *contractor.Contractor {
	t.Helper()
	now := time.Now()
	c, err := contractor.ReconstructContractor(id, 1, name, name+"@example.com", "", trades, zips, cities, propertyIDs, now, now)
	require.NoError(t, err)
	return c
}

func testProperty(t *testing.T, id uint, zip, city string) *property.Property {
	t.Helper()
	now := time.Now()
	p, err := property.ReconstructProperty(id, 1, "Harbor Block", "Main St 1", zip, city, nil, now, now)
	require.NoError(t, err)
	return p
}

func TestScoringRanker_FullScoreScenario(t *testing.T) {
	// Contractor with trade, property link, zip and city match all at once.
	// 50+30+20+15+10 exceeds 100 and must clamp.
	propertyID := uint(7)
	plumber := testContractor(t, 3, "Pipes R Us",
		[]vo.Category{vo.CategoryPlumbing}, []string{"8000"}, []string{"Zurich"}, []uint{7})

	contractorRepo := &mockContractorRepository{
		findCandidatesFunc: func(ctx context.Context, query contractor.CandidateQuery) ([]*contractor.Contractor, error) {
			assert.Equal(t, uint(1), query.TenantID)
			assert.Equal(t, vo.CategoryPlumbing, query.Category)
			assert.Equal(t, "8000", query.ZipCode)
			assert.Equal(t, "Zurich", query.City)
			assert.Equal(t, 3, query.Limit)
			return []*contractor.Contractor{plumber}, nil
		},
	}
	propertyRepo := &mockPropertyRepository{
		getByIDFunc: func(ctx context.Context, tenantID, id uint) (*property.Property, error) {
			return testProperty(t, id, "8000", "Zurich"), nil
		},
	}

	ranker := NewScoringRanker(contractorRepo, propertyRepo)
	ranked, err := ranker.Rank(context.Background(), 1, vo.CategoryPlumbing, &propertyID)

	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "3", ranked[0].ID)
	assert.Equal(t, "Pipes R Us", ranked[0].Name)
	assert.Equal(t, vo.CategoryPlumbing, ranked[0].Trade)
	assert.Equal(t, 100, ranked[0].MatchScore, "score stacking must clamp at 100")
	assert.Equal(t, SourceInternal, ranked[0].Source)
}

func TestScoringRanker_ScoreComponents(t *testing.T) {
	propertyID := uint(7)

	tests := []struct {
		name       string
		contractor *contractor.Contractor
		propertyID *uint
		wantScore  int
	}{
		{
			// 50 base + 30 trade; location branches all miss
			name:       "trade only",
			contractor: testContractor(t, 1, "A", []vo.Category{vo.CategoryPlumbing}, []string{"9999"}, nil, nil),
			propertyID: &propertyID,
			wantScore:  80,
		},
		{
			// 50 + 30 + 15 zip
			name:       "trade and zip",
			contractor: testContractor(t, 2, "B", []vo.Category{vo.CategoryPlumbing}, []string{"8000"}, nil, nil),
			propertyID: &propertyID,
			wantScore:  95,
		},
		{
			// 50 + 30 + 10 city
			name:       "trade and city",
			contractor: testContractor(t, 3, "C", []vo.Category{vo.CategoryPlumbing}, nil, []string{"Zurich"}, nil),
			propertyID: &propertyID,
			wantScore:  90,
		},
		{
			// 50 + 30 + 20 property link
			name:       "trade and property link",
			contractor: testContractor(t, 4, "D", []vo.Category{vo.CategoryPlumbing}, nil, nil, []uint{7}),
			propertyID: &propertyID,
			wantScore:  100,
		},
		{
			// no property on the ticket: only trade contributes
			name:       "no property resolves no location",
			contractor: testContractor(t, 5, "E", []vo.Category{vo.CategoryPlumbing}, []string{"8000"}, []string{"Zurich"}, []uint{7}),
			propertyID: nil,
			wantScore:  80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contractorRepo := &mockContractorRepository{
				findCandidatesFunc: func(ctx context.Context, query contractor.CandidateQuery) ([]*contractor.Contractor, error) {
					return []*contractor.Contractor{tt.contractor}, nil
				},
			}
			propertyRepo := &mockPropertyRepository{
				getByIDFunc: func(ctx context.Context, tenantID, id uint) (*property.Property, error) {
					return testProperty(t, id, "8000", "Zurich"), nil
				},
			}

			ranker := NewScoringRanker(contractorRepo, propertyRepo)
			ranked, err := ranker.Rank(context.Background(), 1, vo.CategoryPlumbing, tt.propertyID)

			require.NoError(t, err)
			require.Len(t, ranked, 1)
			assert.Equal(t, tt.wantScore, ranked[0].MatchScore)
			assert.GreaterOrEqual(t, ranked[0].MatchScore, 50)
			assert.LessOrEqual(t, ranked[0].MatchScore, 100)
		})
	}
}

func TestScoringRanker_ZeroMatchesYieldsFallback(t *testing.T) {
	contractorRepo := &mockContractorRepository{
		findCandidatesFunc: func(ctx context.Context, query contractor.CandidateQuery) ([]*contractor.Contractor, error) {
			return nil, nil
		},
	}

	ranker := NewScoringRanker(contractorRepo, &mockPropertyRepository{})
	ranked, err := ranker.Rank(context.Background(), 1, vo.CategoryGeneralMaintenance, nil)

	require.NoError(t, err)
	require.Len(t, ranked, 1, "rank must never return an empty list")
	assert.Equal(t, "external-fallback", ranked[0].ID)
	assert.Equal(t, "Generic Trade Partner", ranked[0].Name)
	assert.Equal(t, vo.CategoryGeneralMaintenance, ranked[0].Trade)
	assert.Equal(t, 60, ranked[0].MatchScore)
	assert.Equal(t, SourceExternalFallback, ranked[0].Source)
}

func TestScoringRanker_DBErrorPropagates(t *testing.T) {
	repoErr := errors.New("connection refused")
	contractorRepo := &mockContractorRepository{
		findCandidatesFunc: func(ctx context.Context, query contractor.CandidateQuery) ([]*contractor.Contractor, error) {
			return nil, repoErr
		},
	}

	ranker := NewScoringRanker(contractorRepo, &mockPropertyRepository{})
	ranked, err := ranker.Rank(context.Background(), 1, vo.CategoryPlumbing, nil)

	require.Error(t, err, "a data-access failure must not be masked by the fallback")
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, ranked)
}

func TestScoringRanker_PropertyLookupFailureIsSilent(t *testing.T) {
	propertyID := uint(404)
	var captured contractor.CandidateQuery

	contractorRepo := &mockContractorRepository{
		findCandidatesFunc: func(ctx context.Context, query contractor.CandidateQuery) ([]*contractor.Contractor, error) {
			captured = query
			return nil, nil
		},
	}
	propertyRepo := &mockPropertyRepository{
		getByIDFunc: func(ctx context.Context, tenantID, id uint) (*property.Property, error) {
			return nil, errors.New("record not found")
		},
	}

	ranker := NewScoringRanker(contractorRepo, propertyRepo)
	ranked, err := ranker.Rank(context.Background(), 1, vo.CategoryHeating, &propertyID)

	require.NoError(t, err)
	assert.Empty(t, captured.ZipCode)
	assert.Empty(t, captured.City)
	assert.NotNil(t, captured.PropertyID, "the explicit link branch stays usable")
	require.Len(t, ranked, 1)
	assert.Equal(t, SourceExternalFallback, ranked[0].Source)
}

func TestScoringRanker_OrdersByScoreDescending(t *testing.T) {
	propertyID := uint(7)
	weak := testContractor(t, 1, "Weak", []vo.Category{vo.CategoryPlumbing}, nil, nil, nil)
	strong := testContractor(t, 2, "Strong", []vo.Category{vo.CategoryPlumbing}, []string{"8000"}, []string{"Zurich"}, []uint{7})

	contractorRepo := &mockContractorRepository{
		findCandidatesFunc: func(ctx context.Context, query contractor.CandidateQuery) ([]*contractor.Contractor, error) {
			return []*contractor.Contractor{weak, strong}, nil
		},
	}
	propertyRepo := &mockPropertyRepository{
		getByIDFunc: func(ctx context.Context, tenantID, id uint) (*property.Property, error) {
			return testProperty(t, id, "8000", "Zurich"), nil
		},
	}

	ranker := NewScoringRanker(contractorRepo, propertyRepo)
	ranked, err := ranker.Rank(context.Background(), 1, vo.CategoryPlumbing, &propertyID)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Strong", ranked[0].Name)
	assert.Equal(t, "Weak", ranked[1].Name)
	assert.Greater(t, ranked[0].MatchScore, ranked[1].MatchScore)
}
