// Package worker runs build analyses in parallel over a work queue.
package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rotorbench/rotorbench/internal/analysis"
	"github.com/rotorbench/rotorbench/internal/hydrate"
	"github.com/rotorbench/rotorbench/internal/influx"
	"github.com/rotorbench/rotorbench/internal/queue"
	"github.com/rotorbench/rotorbench/internal/storage"
	"github.com/rotorbench/rotorbench/pkg/core"
)

// Result pairs a build ID with its analysis, or the error that prevented it.
type Result struct {
	BuildID  string
	Name     string
	Analysis core.BuildAnalysis
	Err      error
}

// Runner drains a queue of saved build IDs, hydrating and analyzing each
// with a fixed pool of goroutines.
type Runner struct {
	backend  storage.Backend
	hydrator *hydrate.Hydrator
	service  *analysis.Service
	influx   *influx.Manager
	logger   zerolog.Logger
	workers  int
}

// NewRunner creates a Runner. influxManager may be nil when export is
// disabled.
func NewRunner(
	backend storage.Backend,
	hydrator *hydrate.Hydrator,
	service *analysis.Service,
	influxManager *influx.Manager,
	log zerolog.Logger,
	workers int,
) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		backend:  backend,
		hydrator: hydrator,
		service:  service,
		influx:   influxManager,
		logger:   log,
		workers:  workers,
	}
}

// Run analyzes every queued build ID and returns the results in completion
// order. It blocks until the queue is drained or the context is canceled;
// a canceled run discards whatever is still queued.
func (r *Runner) Run(ctx context.Context, ids *queue.Queue[string]) []Result {
	results := make([]Result, 0, ids.Len())

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				id, ok := ids.Pop()
				if !ok {
					return
				}

				result := r.analyzeOne(ctx, id)

				mu.Lock()
				results = append(results, result)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if ctx.Err() != nil {
		ids.Clear()
	}
	return results
}

func (r *Runner) analyzeOne(ctx context.Context, id string) Result {
	cfg, err := r.backend.Build(id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("Failed to load build")
		return Result{BuildID: id, Err: err}
	}

	build := r.hydrator.Hydrate(cfg)
	result := r.service.Analyze(ctx, build)

	if r.influx != nil {
		if err := r.influx.WriteAnalysis(build.Name, result); err != nil {
			r.logger.Error().Err(err).Str("build", build.Name).
				Msg("Failed to export analysis")
		}
	}

	return Result{BuildID: id, Name: build.Name, Analysis: result}
}
