// Package queue moves ticket triage work through a Redis list. Submission
// pushes a job, the worker pops and runs the pipeline, and failed jobs are
// re-enqueued with an attempt counter until the retry budget runs out.
package queue

import "github.com/google/uuid"

// TriageJob is the wire format of a queued triage request. Only the ticket id
// identifies the work; the worker loads everything else from the database so
// stale payloads cannot override current ticket state.
type TriageJob struct {
	JobID    string `json:"job_id"`
	TicketID uint   `json:"ticket_id"`
	Attempt  int    `json:"attempt"`
}

func newTriageJob(ticketID uint) TriageJob {
	return TriageJob{
		JobID:    uuid.New().String(),
		TicketID: ticketID,
		Attempt:  1,
	}
}
