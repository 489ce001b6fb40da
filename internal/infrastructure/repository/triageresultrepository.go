package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"propdesk/internal/domain/triage"
	"propdesk/internal/infrastructure/persistence/mappers"
	"propdesk/internal/infrastructure/persistence/models"
	"propdesk/internal/shared/db"
	"propdesk/internal/shared/errors"
)

type TriageResultRepository struct {
	db     *gorm.DB
	mapper mappers.TriageResultMapper
}

func NewTriageResultRepository(db *gorm.DB) *TriageResultRepository {
	return &TriageResultRepository{
		db:     db,
		mapper: mappers.NewTriageResultMapper(),
	}
}

func (r *TriageResultRepository) Save(ctx context.Context, result *triage.TriageResult) error {
	model, err := r.mapper.ToModel(result)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save triage result: %w", err)
	}

	return result.SetID(model.ID)
}

func (r *TriageResultRepository) GetLatestByTicketID(ctx context.Context, ticketID uint) (*triage.TriageResult, error) {
	var model models.TriageResultModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("no triage result for ticket")
		}
		return nil, fmt.Errorf("failed to find latest triage result: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TriageResultRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*triage.TriageResult, error) {
	var resultModels []models.TriageResultModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC, id DESC").
		Find(&resultModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list triage results: %w", err)
	}

	results := make([]*triage.TriageResult, 0, len(resultModels))
	for i := range resultModels {
		result, err := r.mapper.ToDomain(&resultModels[i])
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}
