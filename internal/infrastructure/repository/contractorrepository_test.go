package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"propdesk/internal/domain/contractor"
	vo "propdesk/internal/domain/ticket/valueobjects"
	"propdesk/internal/infrastructure/persistence/models"
)

func setupContractorTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ContractorModel{}, &models.ContractorPropertyModel{})
	require.NoError(t, err)

	return db
}

// A query with no usable location branch must return zero candidates without
// touching the database. The seeded contractor matches on trade, so any
// regression toward "absent values match everything" would surface it here.
func TestContractorRepository_FindCandidates_NoUsableBranch(t *testing.T) {
	db := setupContractorTestDB(t)
	repo := NewContractorRepository(db)

	plumber, err := contractor.NewContractor(
		1, "Pipes R Us", "dispatch@pipes.example", "",
		[]vo.Category{vo.CategoryPlumbing}, []string{"8000"}, []string{"Zurich"},
	)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), plumber))

	candidates, err := repo.FindCandidates(context.Background(), contractor.CandidateQuery{
		TenantID: 1,
		Category: vo.CategoryPlumbing,
		Limit:    3,
	})

	require.NoError(t, err)
	assert.Empty(t, candidates)
}

// A nil gorm handle would panic on any query, so a clean return proves the
// repository short-circuits before building one.
func TestContractorRepository_FindCandidates_NoUsableBranchSkipsQuery(t *testing.T) {
	repo := NewContractorRepository(nil)

	candidates, err := repo.FindCandidates(context.Background(), contractor.CandidateQuery{
		TenantID: 1,
		Category: vo.CategoryPlumbing,
		Limit:    3,
	})

	require.NoError(t, err)
	assert.Nil(t, candidates)
}
