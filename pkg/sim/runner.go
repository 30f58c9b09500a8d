// Package sim drives ships from a headless frame scheduler. Each frame every
// entity is updated exactly once with the same elapsed time.
package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/opd-ai/go-shipmotor/pkg/config"
	"github.com/opd-ai/go-shipmotor/pkg/entity"
	"github.com/opd-ai/go-shipmotor/pkg/logging"
)

// Renderable is an entity that can draw itself.
type Renderable interface {
	Render(r entity.Renderer)
}

// Runner advances a fixed set of entities frame by frame. Entities are
// independent: with a worker pool, different entities may update in
// parallel, but a single entity is never updated twice in one frame.
type Runner struct {
	entities      []entity.Entity
	frameInterval time.Duration
	maxDelta      float64

	pool     *ants.Pool
	renderer entity.Renderer
	logger   *logging.Logger

	tick       uint64
	lastUpdate time.Time
	now        func() time.Time
}

// Option customizes a Runner.
type Option func(*Runner)

// WithRenderer draws renderable entities after every frame.
func WithRenderer(r entity.Renderer) Option {
	return func(rn *Runner) { rn.renderer = r }
}

// WithLogger sets the runner's logger.
func WithLogger(logger *logging.Logger) Option {
	return func(rn *Runner) { rn.logger = logger }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(rn *Runner) { rn.now = now }
}

// NewRunner creates a runner from cfg. A positive Workers count starts an
// ants pool of that size; call Release when done.
func NewRunner(cfg config.SimulationConfig, opts ...Option) (*Runner, error) {
	if cfg.FrameRate <= 0 {
		return nil, fmt.Errorf("%w: frameRate must be positive, got %d", config.ErrInvalidSettings, cfg.FrameRate)
	}

	r := &Runner{
		frameInterval: time.Second / time.Duration(cfg.FrameRate),
		maxDelta:      cfg.MaxDeltaTime,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.NewNopLogger()
	}

	if cfg.Workers > 0 {
		pool, err := ants.NewPool(cfg.Workers, ants.WithPreAlloc(true))
		if err != nil {
			return nil, fmt.Errorf("failed to create worker pool: %w", err)
		}
		r.pool = pool
	}

	return r, nil
}

// Add registers an entity. It must not be called while a frame is running.
func (r *Runner) Add(e entity.Entity) {
	r.entities = append(r.entities, e)
}

// Entities returns the registered entities.
func (r *Runner) Entities() []entity.Entity {
	return r.entities
}

// Tick returns the number of completed frames.
func (r *Runner) Tick() uint64 {
	return r.tick
}

// Step runs one frame with elapsed seconds. Negative values become zero and
// values above the configured maximum are capped. It returns the elapsed
// time actually applied.
func (r *Runner) Step(elapsed float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	if r.maxDelta > 0 && elapsed > r.maxDelta {
		elapsed = r.maxDelta
	}

	if r.pool == nil {
		for _, e := range r.entities {
			e.Update(elapsed)
		}
	} else {
		r.stepParallel(elapsed)
	}

	r.tick++
	r.render()
	return elapsed
}

func (r *Runner) stepParallel(elapsed float64) {
	var wg sync.WaitGroup
	for _, e := range r.entities {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			e.Update(elapsed)
		}
		if err := r.pool.Submit(task); err != nil {
			r.logger.Warn(context.Background(), "Worker pool rejected update, running inline",
				"entity_id", uint64(e.GetID()),
				"error", err.Error(),
			)
			task()
		}
	}
	wg.Wait()
}

func (r *Runner) render() {
	if r.renderer == nil {
		return
	}
	r.renderer.Clear()
	for _, e := range r.entities {
		if renderable, ok := e.(Renderable); ok {
			renderable.Render(r.renderer)
		}
	}
	r.renderer.Present()
}

// calculateDeltaTime returns the seconds since the previous frame.
func (r *Runner) calculateDeltaTime() float64 {
	now := r.now()
	deltaTime := now.Sub(r.lastUpdate).Seconds()
	r.lastUpdate = now
	return deltaTime
}

// Run steps every frame interval until ctx is done or maxFrames frames
// have run. maxFrames 0 means no limit.
func (r *Runner) Run(ctx context.Context, maxFrames uint64) error {
	ticker := time.NewTicker(r.frameInterval)
	defer ticker.Stop()

	r.lastUpdate = r.now()
	r.logger.Info(ctx, "Simulation started",
		"entities", len(r.entities),
		"frame_interval", r.frameInterval.String(),
		"workers", r.workers(),
	)

	start := r.tick
	for maxFrames == 0 || r.tick-start < maxFrames {
		select {
		case <-ctx.Done():
			r.logger.Info(ctx, "Simulation stopped", "frames", r.tick-start)
			return ctx.Err()
		case <-ticker.C:
			r.Step(r.calculateDeltaTime())
		}
	}

	r.logger.Info(ctx, "Simulation finished", "frames", r.tick-start)
	return nil
}

func (r *Runner) workers() int {
	if r.pool == nil {
		return 0
	}
	return r.pool.Cap()
}

// Release stops the worker pool, if any.
func (r *Runner) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}
