package core

import (
	"context"
	"errors"
)

// ErrMaxIterationsReached indicates the runner hit its iteration limit.
var ErrMaxIterationsReached = errors.New("max iterations reached")

// NullReporter discards all events.
var NullReporter Reporter = nullReporter{}

type nullReporter struct{}

func (nullReporter) Report(Event) {}

// RunnerConfig controls execution behavior.
type RunnerConfig struct {
	MaxIterations int // 0 = unlimited
}

// Runner repeats a workflow. Every iteration reproduces the same trace.
// A Runner is NOT safe for concurrent use.
type Runner struct {
	workflow  Workflow
	config    RunnerConfig
	iteration int
}

func NewRunner(workflow Workflow, config RunnerConfig) *Runner {
	return &Runner{
		workflow: workflow,
		config:   config,
	}
}

// RunIteration executes one complete workflow pass.
// Returns nil on success, ErrMaxIterationsReached when the limit is hit,
// or the context error if ctx is already done.
func (r *Runner) RunIteration(ctx context.Context) error {
	if r.config.MaxIterations > 0 && r.iteration >= r.config.MaxIterations {
		return ErrMaxIterationsReached
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.workflow.Run()
	r.iteration++
	return nil
}

// RunAll iterates until the limit is reached. With no limit configured it
// runs exactly once.
func (r *Runner) RunAll(ctx context.Context) error {
	if r.config.MaxIterations <= 0 {
		return r.RunIteration(ctx)
	}
	for {
		err := r.RunIteration(ctx)
		if errors.Is(err, ErrMaxIterationsReached) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Iteration returns the number of completed iterations.
func (r *Runner) Iteration() int {
	return r.iteration
}
