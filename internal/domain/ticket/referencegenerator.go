package ticket

import (
	"context"

	"propdesk/internal/shared/id"
)

// ReferenceGenerator produces unique human-shareable ticket reference codes.
type ReferenceGenerator interface {
	Generate(ctx context.Context) (string, error)
}

type RandomReferenceGenerator struct{}

func NewRandomReferenceGenerator() *RandomReferenceGenerator {
	return &RandomReferenceGenerator{}
}

func (g *RandomReferenceGenerator) Generate(ctx context.Context) (string, error) {
	return id.NewTicketReference()
}
