package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	vo "propdesk/internal/domain/ticket/valueobjects"
	"propdesk/internal/domain/triage"
	"propdesk/internal/infrastructure/persistence/models"
)

type TriageResultMapper interface {
	ToModel(r *triage.TriageResult) (*models.TriageResultModel, error)
	ToDomain(model *models.TriageResultModel) (*triage.TriageResult, error)
}

type TriageResultMapperImpl struct{}

func NewTriageResultMapper() TriageResultMapper {
	return &TriageResultMapperImpl{}
}

func (m *TriageResultMapperImpl) ToModel(r *triage.TriageResult) (*models.TriageResultModel, error) {
	rankedJSON, err := json.Marshal(r.RankedContractors())
	if err != nil {
		return nil, fmt.Errorf("marshal ranked contractors: %w", err)
	}

	return &models.TriageResultModel{
		ID:                r.ID(),
		TicketID:          r.TicketID(),
		Category:          r.Category().String(),
		Urgency:           r.Urgency().String(),
		RankedContractors: datatypes.JSON(rankedJSON),
		DraftText:         r.DraftText(),
		CreatedAt:         r.CreatedAt().UnixMilli(),
	}, nil
}

func (m *TriageResultMapperImpl) ToDomain(model *models.TriageResultModel) (*triage.TriageResult, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("triage result %d: %w", model.ID, err)
	}
	urgency, err := vo.NewUrgency(model.Urgency)
	if err != nil {
		return nil, fmt.Errorf("triage result %d: %w", model.ID, err)
	}

	var ranked []triage.RankedContractor
	if err := json.Unmarshal(model.RankedContractors, &ranked); err != nil {
		return nil, fmt.Errorf("triage result %d: unmarshal ranked contractors: %w", model.ID, err)
	}

	return triage.ReconstructTriageResult(
		model.ID,
		model.TicketID,
		category,
		urgency,
		ranked,
		model.DraftText,
		time.UnixMilli(model.CreatedAt),
	)
}
