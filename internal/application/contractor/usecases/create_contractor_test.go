package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdesk/internal/domain/contractor"
	vo "propdesk/internal/domain/ticket/valueobjects"
)

func TestCreateContractorUseCase_Execute(t *testing.T) {
	t.Run("success with property links", func(t *testing.T) {
		var saved *contractor.Contractor
		repo := &mockContractorRepository{
			saveFunc: func(ctx context.Context, c *contractor.Contractor) error {
				require.NoError(t, c.SetID(5))
				saved = c
				return nil
			},
		}

		uc := NewCreateContractorUseCase(repo, &mockLogger{})
		result, err := uc.Execute(context.Background(), CreateContractorCommand{
			TenantID:        1,
			Name:            "Pipes R Us",
			Email:           "dispatch@pipes.example",
			TradeTypes:      []string{"PLUMBING", "HEATING"},
			ServiceZipCodes: []string{"8000", "8001"},
			ServiceCities:   []string{"Zurich"},
			PropertyIDs:     []uint{7},
		})

		require.NoError(t, err)
		assert.Equal(t, uint(5), result.ID)
		assert.ElementsMatch(t, []string{"PLUMBING", "HEATING"}, result.TradeTypes)
		assert.Equal(t, []uint{7}, result.PropertyIDs)
		require.NotNil(t, saved)
		assert.True(t, saved.HasTrade(vo.CategoryPlumbing))
	})

	t.Run("invalid trade type", func(t *testing.T) {
		uc := NewCreateContractorUseCase(&mockContractorRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateContractorCommand{
			TenantID: 1, Name: "X", TradeTypes: []string{"CARPENTRY"},
		})
		assert.Error(t, err)
	})

	t.Run("missing trade types", func(t *testing.T) {
		uc := NewCreateContractorUseCase(&mockContractorRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateContractorCommand{
			TenantID: 1, Name: "X",
		})
		assert.Error(t, err)
	})
}

func TestUpdateContractorUseCase_Execute(t *testing.T) {
	now := time.Now()
	existing, err := contractor.ReconstructContractor(
		5, 1, "Old Name", "old@example.com", "",
		[]vo.Category{vo.CategoryPlumbing}, []string{"8000"}, nil, []uint{7}, now, now,
	)
	require.NoError(t, err)

	repo := &mockContractorRepository{
		getByIDFunc: func(ctx context.Context, tenantID, contractorID uint) (*contractor.Contractor, error) {
			return existing, nil
		},
	}

	newLinks := []uint{9}
	uc := NewUpdateContractorUseCase(repo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateContractorCommand{
		TenantID:      1,
		ContractorID:  5,
		Name:          "New Name",
		Email:         "new@example.com",
		TradeTypes:    []string{"ELECTRICAL"},
		ServiceCities: []string{"Basel"},
		PropertyIDs:   &newLinks,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", result.Name)
	assert.Equal(t, []string{"ELECTRICAL"}, result.TradeTypes)
	assert.Equal(t, []uint{9}, result.PropertyIDs)
	assert.Equal(t, []string{"Basel"}, result.ServiceCities)
}
