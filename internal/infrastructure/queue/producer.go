package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"propdesk/internal/shared/logger"
)

// RedisTriageProducer pushes triage jobs onto the shared Redis list. It backs
// the TriageEnqueuer port used by the ticket use cases.
type RedisTriageProducer struct {
	client   *redis.Client
	queueKey string
	logger   logger.Interface
}

func NewRedisTriageProducer(client *redis.Client, queueKey string, log logger.Interface) *RedisTriageProducer {
	return &RedisTriageProducer{
		client:   client,
		queueKey: queueKey,
		logger:   log,
	}
}

// Enqueue queues the ticket for a first triage attempt.
func (p *RedisTriageProducer) Enqueue(ctx context.Context, ticketID uint) error {
	return p.push(ctx, newTriageJob(ticketID))
}

func (p *RedisTriageProducer) push(ctx context.Context, job TriageJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal triage job: %w", err)
	}

	if err := p.client.LPush(ctx, p.queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to push triage job to redis: %w", err)
	}

	p.logger.Debugw("triage job enqueued",
		"job_id", job.JobID,
		"ticket_id", job.TicketID,
		"attempt", job.Attempt,
	)
	return nil
}
