package triage

import (
	"fmt"
	"strings"

	vo "propdesk/internal/domain/ticket/valueobjects"
)

const (
	placeholderContractor = "Trade Partner"
	placeholderProperty   = "(property not specified)"
	placeholderUnit       = "(unit not specified)"
	placeholderTenant     = "the property manager"
)

// DraftInput carries everything the email template needs, already resolved.
// Callers load property and tenant names; the generator only formats.
type DraftInput struct {
	Reference         string
	Category          vo.Category
	Description       string
	TenantName        string
	PropertyName      string
	UnitLabel         string
	PermissionToEnter bool
	ContractorName    string
}

// DraftGenerator renders the dispatch email staff review before sending.
type DraftGenerator interface {
	Generate(input DraftInput) string
}

// TemplateDraftGenerator produces a fixed plaintext template. Missing fields
// render as neutral placeholders, never as an error; staff edit the draft
// before sending anyway.
type TemplateDraftGenerator struct{}

func NewTemplateDraftGenerator() *TemplateDraftGenerator {
	return &TemplateDraftGenerator{}
}

func (g *TemplateDraftGenerator) Generate(input DraftInput) string {
	contractorName := input.ContractorName
	if contractorName == "" {
		contractorName = placeholderContractor
	}
	propertyName := input.PropertyName
	if propertyName == "" {
		propertyName = placeholderProperty
	}
	unitLabel := input.UnitLabel
	if unitLabel == "" {
		unitLabel = placeholderUnit
	}
	tenantName := input.TenantName
	if tenantName == "" {
		tenantName = placeholderTenant
	}

	permission := "No"
	if input.PermissionToEnter {
		permission = "Yes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: Maintenance request %s - %s\n", input.Reference, input.Category)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "Dear %s,\n", contractorName)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "We would like to commission you for the following maintenance job:\n")
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "Property: %s\n", propertyName)
	fmt.Fprintf(&b, "Unit: %s\n", unitLabel)
	fmt.Fprintf(&b, "Permission to enter: %s\n", permission)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "Reported issue:\n%s\n", input.Description)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "Please reply with your availability, referencing %s.\n", input.Reference)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "Kind regards,\n%s\n", tenantName)

	return b.String()
}
