package mappers

import (
	"fmt"
	"time"

	"propdesk/internal/domain/ticket"
	vo "propdesk/internal/domain/ticket/valueobjects"
	"propdesk/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	MessageToModel(m *ticket.Message) *models.MessageModel
	MessageToDomain(model *models.MessageModel) (*ticket.Message, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:                t.ID(),
		TenantID:          t.TenantID(),
		Reference:         t.Reference(),
		Type:              t.Type().String(),
		Status:            t.Status().String(),
		Urgency:           t.Urgency().String(),
		Description:       t.Description(),
		ReporterName:      t.ReporterName(),
		ReporterEmail:     t.ReporterEmail(),
		ReporterPhone:     t.ReporterPhone(),
		PropertyID:        t.PropertyID(),
		UnitLabel:         t.UnitLabel(),
		PermissionToEnter: t.PermissionToEnter(),
		CreatedAt:         t.CreatedAt().UnixMilli(),
		UpdatedAt:         t.UpdatedAt().UnixMilli(),
	}

	if t.Category() != nil {
		category := t.Category().String()
		model.Category = &category
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	urgency, err := vo.NewUrgency(model.Urgency)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	var category *vo.Category
	if model.Category != nil {
		parsed, err := vo.NewCategory(*model.Category)
		if err != nil {
			return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
		}
		category = &parsed
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.TenantID,
		model.Reference,
		vo.TicketType(model.Type),
		status,
		urgency,
		category,
		model.Description,
		model.ReporterName,
		model.ReporterEmail,
		model.ReporterPhone,
		model.PropertyID,
		model.UnitLabel,
		model.PermissionToEnter,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:         msg.ID(),
		TicketID:   msg.TicketID(),
		AuthorKind: string(msg.AuthorKind()),
		AuthorName: msg.AuthorName(),
		Body:       msg.Body(),
		CreatedAt:  msg.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) MessageToDomain(model *models.MessageModel) (*ticket.Message, error) {
	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		ticket.AuthorKind(model.AuthorKind),
		model.AuthorName,
		model.Body,
		time.UnixMilli(model.CreatedAt),
	)
}
