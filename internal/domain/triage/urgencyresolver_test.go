package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vo "propdesk/internal/domain/ticket/valueobjects"
)

func TestKeywordUrgencyResolver_Resolve(t *testing.T) {
	resolver := NewKeywordUrgencyResolver()

	tests := []struct {
		name        string
		description string
		reported    vo.Urgency
		want        vo.Urgency
	}{
		{"flood overrides normal", "Flood in the basement", vo.UrgencyNormal, vo.UrgencyEmergency},
		{"fire overrides urgent", "Small fire near the fuse box", vo.UrgencyUrgent, vo.UrgencyEmergency},
		{"burst overrides normal", "A pipe burst overnight", vo.UrgencyNormal, vo.UrgencyEmergency},
		{"keyword match is case-insensitive", "FLOODING everywhere", vo.UrgencyNormal, vo.UrgencyEmergency},
		{"reported emergency respected without keyword", "Strange smell in the hallway", vo.UrgencyEmergency, vo.UrgencyEmergency},
		{"reported urgent respected without keyword", "Heating is weak", vo.UrgencyUrgent, vo.UrgencyUrgent},
		{"reported normal stays normal", "Scuffed wall in the stairwell", vo.UrgencyNormal, vo.UrgencyNormal},
		{"unknown reported value degrades to normal", "Scuffed wall", vo.Urgency(""), vo.UrgencyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.description, tt.reported))
		})
	}
}
