package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"wa-console/internal/observability"
)

var (
	errAlreadyStarted = errors.New("worker pool can only start once")
	errNotRunning     = errors.New("worker pool is not running")
	errDrainTimeout   = errors.New("drain timeout exceeded")
)

// ProcessingResult is what OnResult receives for each finished job.
type ProcessingResult struct {
	Job   OutboundJob
	Error error
}

// ResultCallback runs on the worker goroutine after each job.
type ResultCallback func(result ProcessingResult)

// WorkerPoolConfig sizes the pool. Zero values fall back to
// DefaultWorkerPoolConfig.
type WorkerPoolConfig struct {
	NumWorkers int
	QueueSize  int

	// DrainTimeout caps how long Drain waits for queued sends.
	DrainTimeout time.Duration

	// JobTimeout bounds a single Process call. Zero means no bound.
	JobTimeout time.Duration

	OnResult ResultCallback
}

func DefaultWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{
		NumWorkers:   4,
		QueueSize:    100,
		DrainTimeout: 10 * time.Second,
		JobTimeout:   30 * time.Second,
	}
}

func (c WorkerPoolConfig) withDefaults() WorkerPoolConfig {
	d := DefaultWorkerPoolConfig()
	if c.NumWorkers <= 0 {
		c.NumWorkers = d.NumWorkers
	}
	if c.QueueSize <= 0 {
		c.QueueSize = d.QueueSize
	}
	if c.DrainTimeout <= 0 {
		c.DrainTimeout = d.DrainTimeout
	}
	return c
}

type poolState int

const (
	stateIdle poolState = iota
	stateRunning
	stateDraining
	stateStopped
)

func (s poolState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRunning:
		return "running"
	case stateDraining:
		return "draining"
	default:
		return "stopped"
	}
}

type pool struct {
	cfg       WorkerPoolConfig
	processor JobProcessor
	logger    *observability.Logger

	// Senders hold mu for reading; the queue is only closed under the write
	// lock. closing is closed first so a Submit blocked on a full queue lets
	// go of its read lock before Drain or Stop waits for the write lock.
	mu        sync.RWMutex
	state     poolState
	queue     chan OutboundJob
	closing   chan struct{}
	closeOnce sync.Once
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewWorkerPool returns an idle pool delivering jobs through processor.
func NewWorkerPool(cfg WorkerPoolConfig, processor JobProcessor, logger *observability.Logger) WorkerPool {
	cfg = cfg.withDefaults()
	return &pool{
		cfg:       cfg,
		processor: processor,
		logger:    logger,
		queue:     make(chan OutboundJob, cfg.QueueSize),
		closing:   make(chan struct{}),
	}
}

func (p *pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != stateIdle {
		return fmt.Errorf("%w (state %s)", errAlreadyStarted, p.state)
	}

	// Workers outlive the caller's context; only Stop or Drain ends them.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.cancel = cancel
	p.state = stateRunning

	p.wg.Add(p.cfg.NumWorkers)
	for id := 0; id < p.cfg.NumWorkers; id++ {
		go p.run(runCtx, id)
	}

	p.logger.Info(ctx, fmt.Sprintf("%s pool running with %d workers, queue size %d",
		p.processor.Name(), p.cfg.NumWorkers, p.cfg.QueueSize))
	return nil
}

func (p *pool) Submit(ctx context.Context, job OutboundJob) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.state != stateRunning {
		return ErrPoolNotActive
	}

	select {
	case p.queue <- job:
		return nil
	case <-p.closing:
		return ErrPoolNotActive
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *pool) TrySubmit(job OutboundJob) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.state != stateRunning {
		return ErrPoolNotActive
	}

	select {
	case p.queue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *pool) signalClosing() {
	p.closeOnce.Do(func() { close(p.closing) })
}

// Drain closes the queue, waits up to DrainTimeout for workers to empty it,
// then stops the pool either way.
func (p *pool) Drain(ctx context.Context) error {
	p.mu.RLock()
	state := p.state
	p.mu.RUnlock()
	if state != stateRunning {
		return fmt.Errorf("%w (state %s)", errNotRunning, state)
	}

	p.signalClosing()
	p.mu.Lock()
	if p.state != stateRunning {
		state = p.state
		p.mu.Unlock()
		return fmt.Errorf("%w (state %s)", errNotRunning, state)
	}
	p.state = stateDraining
	pending := len(p.queue)
	close(p.queue)
	p.mu.Unlock()

	p.logger.Info(ctx, fmt.Sprintf("draining %s pool, %d sends pending", p.processor.Name(), pending))

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()

	timer := time.NewTimer(p.cfg.DrainTimeout)
	defer timer.Stop()

	var err error
	select {
	case <-finished:
		p.logger.Info(ctx, fmt.Sprintf("%s pool drained", p.processor.Name()))
	case <-timer.C:
		err = errDrainTimeout
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		p.logger.Warn(ctx, fmt.Sprintf("%s pool drain cut short: %v", p.processor.Name(), err))
	}
	p.Stop()
	return err
}

// Stop cancels in-flight sends and drops whatever is still queued.
func (p *pool) Stop() {
	p.signalClosing()
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case stateStopped:
		return
	case stateIdle, stateRunning:
		close(p.queue)
	}
	p.state = stateStopped
	if p.cancel != nil {
		p.cancel()
	}
}

func (p *pool) run(ctx context.Context, id int) {
	defer p.wg.Done()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "worker_id", Value: id},
		observability.Field{Key: "processor", Value: p.processor.Name()},
	)

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.queue:
			if !ok {
				return
			}
			p.deliver(ctx, job)
		}
	}
}

func (p *pool) deliver(ctx context.Context, job OutboundJob) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "job_id", Value: job.ID},
		observability.Field{Key: "conversation_id", Value: job.ConversationID},
	)
	if p.cfg.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.JobTimeout)
		defer cancel()
	}

	err := p.processor.Process(ctx, job)
	outcome := "success"
	if err != nil {
		outcome = "failure"
		p.logger.Error(ctx, "outbound job failed", err)
	} else {
		p.logger.Debug(ctx, "outbound job done")
	}
	observability.OutboundJobsTotal.WithLabelValues(outcome).Inc()

	if p.cfg.OnResult != nil {
		p.cfg.OnResult(ProcessingResult{Job: job, Error: err})
	}
}
