// Package campaign dials every candidate in a job pipeline, one simulated call
// after another with a fixed pause between starts.
package campaign

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/logger"
	"github.com/spigell/hiring-desk/internal/recruiting"
	"github.com/spigell/hiring-desk/internal/utils"
)

// DefaultStagger is the pause between two call starts of a campaign.
const DefaultStagger = 400 * time.Millisecond

var (
	ErrUnknownJob = errors.New("unknown job")
	ErrRunning    = errors.New("campaign already running")
	ErrClosed     = errors.New("dialer is closed")
)

// Store is the part of the recruiting store a campaign drives.
type Store interface {
	GetJob(id string) (*recruiting.Job, bool)
	JobCandidates(jobID string) ([]*recruiting.Candidate, bool)
	SimulateCall(jobID, candidateID string) bool
	UpdateCandidateStatus(ids []string, status recruiting.CandidateStatus) int
}

type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

type Dialer struct {
	store   Store
	stagger time.Duration
	logger  *zap.Logger

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup

	mu      sync.Mutex
	closed  bool
	running map[string]*run
}

// New creates a dialer. A negative stagger is treated as zero.
func New(store Store, stagger time.Duration, log *zap.Logger) *Dialer {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, stop := context.WithCancel(context.Background())

	return &Dialer{
		store:   store,
		stagger: max(stagger, 0),
		logger:  log,
		ctx:     ctx,
		stop:    stop,
		running: make(map[string]*run),
	}
}

// CallAll starts a call with every candidate of the job, waiting the stagger
// between two starts. It returns how many calls were started; when ctx ends
// early the count so far is returned with the context error.
func (d *Dialer) CallAll(ctx context.Context, jobID string) (int, error) {
	candidates, ok := d.store.JobCandidates(jobID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownJob, jobID)
	}

	log := logger.WithFields(d.logger, logger.JobFields(jobID)...)
	log.Info("campaign started", zap.Int("candidates", len(candidates)))

	dialed := 0
	for i, c := range candidates {
		if i > 0 {
			if err := utils.WaitFor(ctx, d.stagger); err != nil {
				log.Info("campaign interrupted", zap.Int("dialed", dialed), zap.Error(err))
				return dialed, err
			}
		} else if err := ctx.Err(); err != nil {
			return dialed, err
		}

		if d.store.SimulateCall(jobID, c.ID) {
			dialed++
		}
	}

	log.Info("campaign finished", zap.Int("dialed", dialed))
	return dialed, nil
}

// Start runs CallAll for the job in the background. Only one campaign per job
// runs at a time.
func (d *Dialer) Start(jobID string) error {
	if _, ok := d.store.GetJob(jobID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, jobID)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	if _, ok := d.running[jobID]; ok {
		return fmt.Errorf("%w: %s", ErrRunning, jobID)
	}

	ctx, cancel := context.WithCancel(d.ctx)
	r := &run{cancel: cancel, done: make(chan struct{})}
	d.running[jobID] = r

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer close(r.done)
		defer cancel()

		if _, err := d.CallAll(ctx, jobID); err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Warn("campaign failed", zap.String(logger.FieldJobID, jobID), zap.Error(err))
		}

		d.mu.Lock()
		if d.running[jobID] == r {
			delete(d.running, jobID)
		}
		d.mu.Unlock()
	}()

	return nil
}

// Running reports whether a background campaign for the job is still dialing.
func (d *Dialer) Running(jobID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.running[jobID]
	return ok
}

// Cancel stops a running campaign for the job, if any, and puts every candidate
// of the job back to Pending. Calls that were already started still complete.
// It returns how many candidates were reset.
func (d *Dialer) Cancel(jobID string) (int, error) {
	job, ok := d.store.GetJob(jobID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownJob, jobID)
	}

	d.mu.Lock()
	r := d.running[jobID]
	delete(d.running, jobID)
	d.mu.Unlock()

	if r != nil {
		r.cancel()
		<-r.done
	}

	reset := d.store.UpdateCandidateStatus(job.Candidates, recruiting.CandidatePending)
	d.logger.Info("campaign canceled",
		zap.String(logger.FieldJobID, jobID),
		zap.Bool("was_running", r != nil),
		zap.Int("reset", reset),
	)
	return reset, nil
}

// Close stops every running campaign and waits for them to return. Further
// Start calls fail with ErrClosed.
func (d *Dialer) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.stop()
	d.wg.Wait()
}
