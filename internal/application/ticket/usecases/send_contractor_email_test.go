package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propdesk/internal/domain/contractor"
	"propdesk/internal/domain/ticket"
	vo "propdesk/internal/domain/ticket/valueobjects"
	"propdesk/internal/domain/triage"
	apperrors "propdesk/internal/shared/errors"
)

func readyTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(
		1, 1, "tk_a1b2c3d4",
		vo.TypeDamageReport, vo.StatusReady, vo.UrgencyNormal, nil,
		"Water leak", "Alex", "alex@example.com", "",
		nil, "", false, now, now,
	)
	require.NoError(t, err)
	return tk
}

func triageResultWith(t *testing.T, ranked ...triage.RankedContractor) *triage.TriageResult {
	t.Helper()
	result, err := triage.ReconstructTriageResult(
		1, 1, vo.CategoryPlumbing, vo.UrgencyNormal, ranked, "Draft body", time.Now(),
	)
	require.NoError(t, err)
	return result
}

func internalCandidate(id, name string, score int) triage.RankedContractor {
	return triage.RankedContractor{ID: id, Name: name, Trade: vo.CategoryPlumbing, MatchScore: score, Source: triage.SourceInternal}
}

func TestSendContractorEmailUseCase_Execute_Success(t *testing.T) {
	tk := readyTicket(t)
	now := time.Now()
	plumber, err := contractor.ReconstructContractor(
		3, 1, "Pipes R Us", "dispatch@pipes.example", "",
		[]vo.Category{vo.CategoryPlumbing}, nil, nil, nil, now, now,
	)
	require.NoError(t, err)

	var sentTo, sentSubject, sentBody string
	var updated *ticket.Ticket

	uc := NewSendContractorEmailUseCase(
		&mockTicketRepository{
			getByIDFunc: func(ctx context.Context, tenantID, id uint) (*ticket.Ticket, error) { return tk, nil },
			updateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		},
		&mockTriageRepository{
			getLatestByTicketIDFunc: func(ctx context.Context, ticketID uint) (*triage.TriageResult, error) {
				return triageResultWith(t, internalCandidate("3", "Pipes R Us", 95)), nil
			},
		},
		&mockContractorRepository{
			getByIDFunc: func(ctx context.Context, tenantID, contractorID uint) (*contractor.Contractor, error) {
				assert.Equal(t, uint(3), contractorID)
				return plumber, nil
			},
		},
		&mockEmailSender{
			sendFunc: func(to, subject, body string) error {
				sentTo, sentSubject, sentBody = to, subject, body
				return nil
			},
		},
		&mockEventPublisher{},
		&mockLogger{},
	)

	result, err := uc.Execute(context.Background(), SendContractorEmailCommand{TenantID: 1, TicketID: 1})

	require.NoError(t, err)
	assert.Equal(t, "dispatch@pipes.example", sentTo)
	assert.Contains(t, sentSubject, "tk_a1b2c3d4")
	assert.Contains(t, sentSubject, "PLUMBING")
	assert.Equal(t, "Draft body", sentBody)
	assert.Equal(t, "awaiting_contractor", result.Status)
	require.NotNil(t, updated)
	assert.Equal(t, vo.StatusAwaitingContractor, updated.Status())
}

func TestSendContractorEmailUseCase_Execute_RefusesFallbackTarget(t *testing.T) {
	tk := readyTicket(t)
	fallback := triage.RankedContractor{
		ID: "external-fallback", Name: "Generic Trade Partner",
		Trade: vo.CategoryPlumbing, MatchScore: 60, Source: triage.SourceExternalFallback,
	}
	sent := false

	uc := NewSendContractorEmailUseCase(
		&mockTicketRepository{
			getByIDFunc: func(ctx context.Context, tenantID, id uint) (*ticket.Ticket, error) { return tk, nil },
		},
		&mockTriageRepository{
			getLatestByTicketIDFunc: func(ctx context.Context, ticketID uint) (*triage.TriageResult, error) {
				return triageResultWith(t, fallback), nil
			},
		},
		&mockContractorRepository{},
		&mockEmailSender{sendFunc: func(to, subject, body string) error { sent = true; return nil }},
		&mockEventPublisher{},
		&mockLogger{},
	)

	result, err := uc.Execute(context.Background(), SendContractorEmailCommand{TenantID: 1, TicketID: 1})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, sent)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestSendContractorEmailUseCase_Execute_NoTriageResultYet(t *testing.T) {
	tk := readyTicket(t)

	uc := NewSendContractorEmailUseCase(
		&mockTicketRepository{
			getByIDFunc: func(ctx context.Context, tenantID, id uint) (*ticket.Ticket, error) { return tk, nil },
		},
		&mockTriageRepository{
			getLatestByTicketIDFunc: func(ctx context.Context, ticketID uint) (*triage.TriageResult, error) {
				return nil, apperrors.NewNotFoundError("no triage result")
			},
		},
		&mockContractorRepository{},
		&mockEmailSender{},
		&mockEventPublisher{},
		&mockLogger{},
	)

	_, err := uc.Execute(context.Background(), SendContractorEmailCommand{TenantID: 1, TicketID: 1})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestSendContractorEmailUseCase_Execute_ExplicitCandidateSelection(t *testing.T) {
	tk := readyTicket(t)
	now := time.Now()
	second, err := contractor.ReconstructContractor(
		5, 1, "Second Best", "second@example.com", "",
		[]vo.Category{vo.CategoryPlumbing}, nil, nil, nil, now, now,
	)
	require.NoError(t, err)

	uc := NewSendContractorEmailUseCase(
		&mockTicketRepository{
			getByIDFunc: func(ctx context.Context, tenantID, id uint) (*ticket.Ticket, error) { return tk, nil },
		},
		&mockTriageRepository{
			getLatestByTicketIDFunc: func(ctx context.Context, ticketID uint) (*triage.TriageResult, error) {
				return triageResultWith(t,
					internalCandidate("3", "Pipes R Us", 95),
					internalCandidate("5", "Second Best", 80),
				), nil
			},
		},
		&mockContractorRepository{
			getByIDFunc: func(ctx context.Context, tenantID, contractorID uint) (*contractor.Contractor, error) {
				assert.Equal(t, uint(5), contractorID)
				return second, nil
			},
		},
		&mockEmailSender{},
		&mockEventPublisher{},
		&mockLogger{},
	)

	result, err := uc.Execute(context.Background(), SendContractorEmailCommand{TenantID: 1, TicketID: 1, ContractorID: "5"})

	require.NoError(t, err)
	assert.Equal(t, "5", result.ContractorID)
	assert.Equal(t, "second@example.com", result.Recipient)
}

func TestSendContractorEmailUseCase_Execute_EmailFailure(t *testing.T) {
	tk := readyTicket(t)
	now := time.Now()
	plumber, err := contractor.ReconstructContractor(
		3, 1, "Pipes R Us", "dispatch@pipes.example", "",
		[]vo.Category{vo.CategoryPlumbing}, nil, nil, nil, now, now,
	)
	require.NoError(t, err)

	updated := false
	uc := NewSendContractorEmailUseCase(
		&mockTicketRepository{
			getByIDFunc: func(ctx context.Context, tenantID, id uint) (*ticket.Ticket, error) { return tk, nil },
			updateFunc:  func(ctx context.Context, tk *ticket.Ticket) error { updated = true; return nil },
		},
		&mockTriageRepository{
			getLatestByTicketIDFunc: func(ctx context.Context, ticketID uint) (*triage.TriageResult, error) {
				return triageResultWith(t, internalCandidate("3", "Pipes R Us", 95)), nil
			},
		},
		&mockContractorRepository{
			getByIDFunc: func(ctx context.Context, tenantID, contractorID uint) (*contractor.Contractor, error) {
				return plumber, nil
			},
		},
		&mockEmailSender{sendFunc: func(to, subject, body string) error { return errors.New("smtp timeout") }},
		&mockEventPublisher{},
		&mockLogger{},
	)

	_, err = uc.Execute(context.Background(), SendContractorEmailCommand{TenantID: 1, TicketID: 1})

	require.Error(t, err)
	assert.False(t, updated, "status must not change when delivery failed")
	assert.Equal(t, vo.StatusReady, tk.Status())
}

func TestSendContractorEmailUseCase_Execute_SubjectNotRepeatedInBody(t *testing.T) {
	tk := readyTicket(t)
	now := time.Now()
	plumber, err := contractor.ReconstructContractor(
		3, 1, "Pipes R Us", "dispatch@pipes.example", "",
		[]vo.Category{vo.CategoryPlumbing}, nil, nil, nil, now, now,
	)
	require.NoError(t, err)

	draft := "Subject: Maintenance request tk_a1b2c3d4 - PLUMBING\n\nDear Pipes R Us,\n\nReported issue:\nWater leak\n"
	result, err := triage.ReconstructTriageResult(
		1, 1, vo.CategoryPlumbing, vo.UrgencyNormal,
		[]triage.RankedContractor{internalCandidate("3", "Pipes R Us", 95)},
		draft, now,
	)
	require.NoError(t, err)

	var sentSubject, sentBody string

	uc := NewSendContractorEmailUseCase(
		&mockTicketRepository{
			getByIDFunc: func(ctx context.Context, tenantID, id uint) (*ticket.Ticket, error) { return tk, nil },
			updateFunc:  func(ctx context.Context, tk *ticket.Ticket) error { return nil },
		},
		&mockTriageRepository{
			getLatestByTicketIDFunc: func(ctx context.Context, ticketID uint) (*triage.TriageResult, error) {
				return result, nil
			},
		},
		&mockContractorRepository{
			getByIDFunc: func(ctx context.Context, tenantID, contractorID uint) (*contractor.Contractor, error) {
				return plumber, nil
			},
		},
		&mockEmailSender{
			sendFunc: func(to, subject, body string) error {
				sentSubject, sentBody = subject, body
				return nil
			},
		},
		&mockEventPublisher{},
		&mockLogger{},
	)

	_, err = uc.Execute(context.Background(), SendContractorEmailCommand{TenantID: 1, TicketID: 1})

	require.NoError(t, err)
	assert.Equal(t, "Maintenance request tk_a1b2c3d4 - PLUMBING", sentSubject)
	assert.NotContains(t, sentBody, "Subject:")
	assert.True(t, strings.HasPrefix(sentBody, "Dear Pipes R Us,"))
}

func TestSplitDraft(t *testing.T) {
	tests := []struct {
		name        string
		draft       string
		wantSubject string
		wantBody    string
	}{
		{
			name:        "subject line stripped from body",
			draft:       "Subject: Maintenance request tk_x - HEATING\n\nDear contractor,\n",
			wantSubject: "Maintenance request tk_x - HEATING",
			wantBody:    "Dear contractor,\n",
		},
		{
			name:        "no subject line leaves draft untouched",
			draft:       "Dear contractor,\n",
			wantSubject: "",
			wantBody:    "Dear contractor,\n",
		},
		{
			name:        "subject only",
			draft:       "Subject: Maintenance request tk_x - HEATING",
			wantSubject: "Maintenance request tk_x - HEATING",
			wantBody:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := splitDraft(tt.draft)
			assert.Equal(t, tt.wantSubject, subject)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
