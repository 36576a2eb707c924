package workers

import (
	"context"
	"errors"
)

var (
	ErrQueueFull     = errors.New("worker pool queue is full")
	ErrPoolNotActive = errors.New("worker pool is not accepting jobs")
)

// OutboundJob is one gateway send handed off by a request handler. The
// message it refers to is already recorded; the job only delivers it.
type OutboundJob struct {
	ID             string
	ConversationID string
	To             string
	Body           string

	// TemplateName selects a template send instead of free text.
	TemplateName string
	LanguageCode string
}

// JobProcessor handles jobs taken off the queue.
type JobProcessor interface {
	// Process handles a single job. Errors are logged by the pool and
	// reported through OnResult; jobs are never retried.
	Process(ctx context.Context, job OutboundJob) error

	// Name returns the processor name for logging and metrics.
	Name() string
}

// WorkerPool defines the interface for managing a pool of job workers.
type WorkerPool interface {
	// Start initializes the worker pool with N workers.
	Start(ctx context.Context) error

	// Submit adds a job to the queue, blocking while the queue is full.
	Submit(ctx context.Context, job OutboundJob) error

	// TrySubmit adds a job without blocking. Returns ErrQueueFull when the
	// queue has no room.
	TrySubmit(job OutboundJob) error

	// Drain stops accepting new jobs and waits for queued jobs to complete.
	Drain(ctx context.Context) error

	// Stop immediately stops all workers.
	Stop()
}
