package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"propdesk/internal/application/triage/usecases"
	"propdesk/internal/domain/shared/events"
	"propdesk/internal/domain/ticket"
	"propdesk/internal/shared/config"
	"propdesk/internal/shared/goroutine"
	"propdesk/internal/shared/logger"
)

const popTimeout = 5 * time.Second

// RedisTriageConsumer pops triage jobs and runs the pipeline. Failed jobs are
// retried with a fixed delay; once the attempt budget is spent the ticket is
// moved to triage_failed so staff can see it and reprocess manually.
type RedisTriageConsumer struct {
	client     *redis.Client
	cfg        config.TriageConfig
	executor   usecases.TriageTicketExecutor
	ticketRepo ticket.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewRedisTriageConsumer(
	client *redis.Client,
	cfg config.TriageConfig,
	executor usecases.TriageTicketExecutor,
	ticketRepo ticket.Repository,
	publisher events.EventPublisher,
	log logger.Interface,
) *RedisTriageConsumer {
	return &RedisTriageConsumer{
		client:     client,
		cfg:        cfg,
		executor:   executor,
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     log,
	}
}

// Run blocks until the context is cancelled, popping and processing jobs one
// at a time. Sequential processing keeps the worker simple; throughput scales
// by running more worker processes against the same list.
func (c *RedisTriageConsumer) Run(ctx context.Context) {
	c.logger.Infow("triage consumer started",
		"queue_key", c.cfg.QueueKey,
		"max_attempts", c.cfg.MaxAttempts,
	)

	for {
		if ctx.Err() != nil {
			c.logger.Infow("triage consumer stopped")
			return
		}

		result, err := c.client.BRPop(ctx, popTimeout, c.cfg.QueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				c.logger.Infow("triage consumer stopped")
				return
			}
			c.logger.Errorw("failed to pop triage job", "error", err)
			time.Sleep(time.Second)
			continue
		}

		// BRPop returns [key, value]
		if len(result) != 2 {
			continue
		}
		c.handlePayload(ctx, result[1])
	}
}

func (c *RedisTriageConsumer) handlePayload(ctx context.Context, payload string) {
	var job TriageJob
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		c.logger.Errorw("discarding malformed triage job", "error", err, "payload", payload)
		return
	}

	log := c.logger.With("job_id", job.JobID, "ticket_id", job.TicketID, "attempt", job.Attempt)
	log.Infow("processing triage job")

	if err := c.executor.Execute(ctx, job.TicketID); err != nil {
		log.Errorw("triage attempt failed", "error", err)
		c.retryOrFail(ctx, job, err)
		return
	}

	log.Infow("triage job completed")
}

func (c *RedisTriageConsumer) retryOrFail(ctx context.Context, job TriageJob, cause error) {
	if job.Attempt < c.cfg.MaxAttempts {
		retry := job
		retry.Attempt++

		delay := time.Duration(c.cfg.RetryDelaySeconds) * time.Second
		goroutine.SafeGo(c.logger, "triage-retry", func() {
			select {
			case <-ctx.Done():
				// Dropped retries are recovered by the stuck-ticket sweep.
				return
			case <-time.After(delay):
			}
			if err := c.push(ctx, retry); err != nil {
				c.logger.Errorw("failed to re-enqueue triage job",
					"job_id", retry.JobID,
					"ticket_id", retry.TicketID,
					"error", err,
				)
			}
		})
		return
	}

	c.markFailed(ctx, job, cause)
}

func (c *RedisTriageConsumer) push(ctx context.Context, job TriageJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return c.client.LPush(ctx, c.cfg.QueueKey, payload).Err()
}

func (c *RedisTriageConsumer) markFailed(ctx context.Context, job TriageJob, cause error) {
	t, err := c.ticketRepo.GetByIDUnscoped(ctx, job.TicketID)
	if err != nil {
		c.logger.Errorw("failed to load ticket for failure marking",
			"ticket_id", job.TicketID, "error", err)
		return
	}
	if t == nil {
		return
	}

	if err := t.MarkTriageFailed(); err != nil {
		// The ticket moved on while we were retrying; nothing to record.
		c.logger.Infow("skipping failure marking",
			"ticket_id", job.TicketID, "status", t.Status().String(), "reason", err)
		return
	}

	if err := c.ticketRepo.Update(ctx, t); err != nil {
		c.logger.Errorw("failed to persist triage failure",
			"ticket_id", job.TicketID, "error", err)
		return
	}

	event := ticket.NewTicketTriageFailedEvent(t.ID(), t.TenantID(), cause.Error(), job.Attempt)
	if err := c.publisher.Publish(event); err != nil {
		c.logger.Warnw("failed to publish triage failed event",
			"ticket_id", job.TicketID, "error", err)
	}

	c.logger.Warnw("ticket marked triage_failed",
		"ticket_id", job.TicketID,
		"attempts", job.Attempt,
		"error", cause,
	)
}
