package triage

import (
	"strings"

	vo "propdesk/internal/domain/ticket/valueobjects"
)

// emergencyKeywords force EMERGENCY regardless of what the reporter selected.
// Reporters routinely under-report severity; the reverse (downgrading a
// reported EMERGENCY) never happens.
var emergencyKeywords = []string{"flood", "fire", "burst"}

// UrgencyResolver determines the effective urgency of a ticket from its
// description and the reporter-selected urgency.
type UrgencyResolver interface {
	Resolve(description string, reported vo.Urgency) vo.Urgency
}

type KeywordUrgencyResolver struct{}

func NewKeywordUrgencyResolver() *KeywordUrgencyResolver {
	return &KeywordUrgencyResolver{}
}

func (r *KeywordUrgencyResolver) Resolve(description string, reported vo.Urgency) vo.Urgency {
	lowered := strings.ToLower(description)

	for _, keyword := range emergencyKeywords {
		if strings.Contains(lowered, keyword) {
			return vo.UrgencyEmergency
		}
	}

	switch reported {
	case vo.UrgencyEmergency:
		return vo.UrgencyEmergency
	case vo.UrgencyUrgent:
		return vo.UrgencyUrgent
	default:
		return vo.UrgencyNormal
	}
}
