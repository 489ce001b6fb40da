package models

import "gorm.io/datatypes"

type TriageResultModel struct {
	ID                uint           `gorm:"primaryKey"`
	TicketID          uint           `gorm:"not null;index"`
	Category          string         `gorm:"size:50;not null"`
	Urgency           string         `gorm:"size:20;not null"`
	RankedContractors datatypes.JSON `gorm:"not null"`
	DraftText         string         `gorm:"type:text;not null"`
	CreatedAt         int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (TriageResultModel) TableName() string {
	return "triage_results"
}
