package dto

import (
	"time"

	"propdesk/internal/domain/ticket"
	"propdesk/internal/domain/triage"
)

type TicketDTO struct {
	ID                uint             `json:"id"`
	Reference         string           `json:"reference"`
	Type              string           `json:"type"`
	Status            string           `json:"status"`
	Urgency           string           `json:"urgency"`
	Category          *string          `json:"category"`
	Description       string           `json:"description"`
	ReporterName      string           `json:"reporter_name"`
	ReporterEmail     string           `json:"reporter_email,omitempty"`
	ReporterPhone     string           `json:"reporter_phone,omitempty"`
	PropertyID        *uint            `json:"property_id"`
	UnitLabel         string           `json:"unit_label,omitempty"`
	PermissionToEnter bool             `json:"permission_to_enter"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Messages          []MessageDTO     `json:"messages"`
	LatestTriage      *TriageResultDTO `json:"latest_triage,omitempty"`
}

type MessageDTO struct {
	ID         uint      `json:"id"`
	AuthorKind string    `json:"author_kind"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

type TicketListItemDTO struct {
	ID           uint    `json:"id"`
	Reference    string  `json:"reference"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	Urgency      string  `json:"urgency"`
	Category     *string `json:"category"`
	ReporterName string  `json:"reporter_name"`
	PropertyID   *uint   `json:"property_id"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type TriageResultDTO struct {
	ID                uint                  `json:"id"`
	TicketID          uint                  `json:"ticket_id"`
	Category          string                `json:"category"`
	Urgency           string                `json:"urgency"`
	RankedContractors []RankedContractorDTO `json:"ranked_contractors"`
	DraftText         string                `json:"draft_text"`
	CreatedAt         time.Time             `json:"created_at"`
}

type RankedContractorDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Trade      string `json:"trade"`
	MatchScore int    `json:"match_score"`
	Source     string `json:"source"`
}

func ToTicketDTO(t *ticket.Ticket, messages []*ticket.Message, latest *triage.TriageResult) *TicketDTO {
	if t == nil {
		return nil
	}

	messageDTOs := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		messageDTOs = append(messageDTOs, ToMessageDTO(m))
	}

	var category *string
	if t.Category() != nil {
		s := t.Category().String()
		category = &s
	}

	return &TicketDTO{
		ID:                t.ID(),
		Reference:         t.Reference(),
		Type:              t.Type().String(),
		Status:            t.Status().String(),
		Urgency:           t.Urgency().String(),
		Category:          category,
		Description:       t.Description(),
		ReporterName:      t.ReporterName(),
		ReporterEmail:     t.ReporterEmail(),
		ReporterPhone:     t.ReporterPhone(),
		PropertyID:        t.PropertyID(),
		UnitLabel:         t.UnitLabel(),
		PermissionToEnter: t.PermissionToEnter(),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
		Messages:          messageDTOs,
		LatestTriage:      ToTriageResultDTO(latest),
	}
}

func ToMessageDTO(m *ticket.Message) MessageDTO {
	return MessageDTO{
		ID:         m.ID(),
		AuthorKind: string(m.AuthorKind()),
		AuthorName: m.AuthorName(),
		Body:       m.Body(),
		CreatedAt:  m.CreatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	var category *string
	if t.Category() != nil {
		s := t.Category().String()
		category = &s
	}

	return TicketListItemDTO{
		ID:           t.ID(),
		Reference:    t.Reference(),
		Type:         t.Type().String(),
		Status:       t.Status().String(),
		Urgency:      t.Urgency().String(),
		Category:     category,
		ReporterName: t.ReporterName(),
		PropertyID:   t.PropertyID(),
		CreatedAt:    t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt().Format(time.RFC3339),
	}
}

func ToTriageResultDTO(r *triage.TriageResult) *TriageResultDTO {
	if r == nil {
		return nil
	}

	ranked := make([]RankedContractorDTO, 0, len(r.RankedContractors()))
	for _, rc := range r.RankedContractors() {
		ranked = append(ranked, RankedContractorDTO{
			ID:         rc.ID,
			Name:       rc.Name,
			Trade:      rc.Trade.String(),
			MatchScore: rc.MatchScore,
			Source:     string(rc.Source),
		})
	}

	return &TriageResultDTO{
		ID:                r.ID(),
		TicketID:          r.TicketID(),
		Category:          r.Category().String(),
		Urgency:           r.Urgency().String(),
		RankedContractors: ranked,
		DraftText:         r.DraftText(),
		CreatedAt:         r.CreatedAt(),
	}
}
