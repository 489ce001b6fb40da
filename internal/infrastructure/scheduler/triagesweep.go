package scheduler

import (
	"context"
	"fmt"
	"time"

	"propdesk/internal/domain/ticket"
	"propdesk/internal/shared/logger"
)

// TriageEnqueuer matches the queue producer. Declared locally so the sweep
// does not depend on the application layer.
type TriageEnqueuer interface {
	Enqueue(ctx context.Context, ticketID uint) error
}

const sweepBatchSize = 100

// TriageSweepJob re-enqueues tickets that have been sitting in ai_processing
// longer than the stuck threshold.
type TriageSweepJob struct {
	ticketRepo     ticket.Repository
	enqueuer       TriageEnqueuer
	stuckThreshold time.Duration
	logger         logger.Interface
}

func NewTriageSweepJob(
	ticketRepo ticket.Repository,
	enqueuer TriageEnqueuer,
	stuckThreshold time.Duration,
	log logger.Interface,
) *TriageSweepJob {
	return &TriageSweepJob{
		ticketRepo:     ticketRepo,
		enqueuer:       enqueuer,
		stuckThreshold: stuckThreshold,
		logger:         log,
	}
}

// Execute finds stuck tickets and pushes each back onto the triage queue.
// Returns the number of tickets re-enqueued.
func (j *TriageSweepJob) Execute(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-j.stuckThreshold)

	stuck, err := j.ticketRepo.ListStuckInProcessing(ctx, cutoff, sweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list stuck tickets: %w", err)
	}

	count := 0
	for _, t := range stuck {
		if err := j.enqueuer.Enqueue(ctx, t.ID()); err != nil {
			// Leave the rest for the next sweep rather than hammering a
			// broken queue.
			j.logger.Errorw("failed to re-enqueue stuck ticket",
				"ticket_id", t.ID(),
				"error", err,
			)
			return count, err
		}

		j.logger.Infow("re-enqueued stuck ticket",
			"ticket_id", t.ID(),
			"reference", t.Reference(),
			"stuck_since", t.UpdatedAt(),
		)
		count++
	}

	return count, nil
}
