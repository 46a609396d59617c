// Package coordinator builds the crew and drives the schedule.
package coordinator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"sitecrew/internal/config"
	"sitecrew/internal/core"
	"sitecrew/internal/crew"
	"sitecrew/internal/ratelimit"
	"sitecrew/internal/trace"
	"sitecrew/internal/workflow"
)

// Log receives diagnostics. It never writes to the trace.
var Log = logrus.New()

// Coordinator owns one runner per scheduled invocation, each holding its own
// actor. Everything runs in the goroutine that calls Run.
type Coordinator struct {
	recorder trace.Recorder
	limiter  *ratelimit.RateLimiter
	runners  []workflow.Runner
	passes   int
}

// New builds a runner and a dedicated actor for every scheduled invocation.
// Actors report to rec.
func New(cfg *config.Config, rec trace.Recorder) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Coordinator{
		recorder: rec,
		limiter:  ratelimit.NewRateLimiter(cfg.Execution.Rate),
		passes:   cfg.Execution.Repeat,
	}
	if c.passes < 1 {
		c.passes = 1
	}

	for i, inv := range cfg.Schedule {
		m, _ := cfg.Member(inv.Member)
		dev, err := crew.New(m.Kind, m.Name, m.Role, m.TeamSize, rec)
		if err != nil {
			return nil, fmt.Errorf("schedule[%d]: crew member %q: %w", i, m.Name, err)
		}
		r, err := workflow.New(inv.Workflow, dev)
		if err != nil {
			return nil, fmt.Errorf("schedule[%d]: %w", i, err)
		}
		c.runners = append(c.runners, r)
		Log.WithFields(logrus.Fields{"workflow": r.Name(), "actor": dev.Name(), "role": dev.Role()}).Debug("runner ready")
	}

	return c, nil
}

// Run executes the schedule in order. Each pass of each runner is its own
// trace section. It stops early only if ctx is done.
func (c *Coordinator) Run(ctx context.Context) error {
	for _, r := range c.runners {
		logger := Log.WithFields(logrus.Fields{"workflow": r.Name(), "actor": r.Actor().Name()})
		runner := core.NewRunner(r, core.RunnerConfig{MaxIterations: c.passes})

		for pass := 1; pass <= c.passes; pass++ {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}
			c.recorder.Begin(r.Name(), r.Actor().Name())
			if err := runner.RunIteration(ctx); err != nil {
				return err
			}
			logger.WithField("pass", pass).Debugf("completed %d steps", len(r.Steps()))
		}
	}
	return nil
}

// Runners returns the scheduled runners in execution order.
func (c *Coordinator) Runners() []workflow.Runner {
	return append([]workflow.Runner(nil), c.runners...)
}
