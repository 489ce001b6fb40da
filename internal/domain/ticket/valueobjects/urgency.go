package valueobjects

import "fmt"

// Urgency is the normalized urgency level of a ticket.
type Urgency string

const (
	UrgencyNormal    Urgency = "NORMAL"
	UrgencyUrgent    Urgency = "URGENT"
	UrgencyEmergency Urgency = "EMERGENCY"
)

var validUrgencies = map[Urgency]bool{
	UrgencyNormal:    true,
	UrgencyUrgent:    true,
	UrgencyEmergency: true,
}

func (u Urgency) String() string {
	return string(u)
}

func (u Urgency) IsValid() bool {
	return validUrgencies[u]
}

func (u Urgency) IsEmergency() bool {
	return u == UrgencyEmergency
}

func NewUrgency(s string) (Urgency, error) {
	u := Urgency(s)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid urgency: %s", s)
	}
	return u, nil
}
