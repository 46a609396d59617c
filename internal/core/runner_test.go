package core

import (
	"context"
	"errors"
	"testing"
)

// mockWorkflow is a simple workflow for testing
type mockWorkflow struct {
	runFunc func()
}

func (m *mockWorkflow) Name() string { return "mock" }

func (m *mockWorkflow) Run() {
	if m.runFunc != nil {
		m.runFunc()
	}
}

// mockReporter collects events for testing
type mockReporter struct {
	events []Event
}

func (m *mockReporter) Report(e Event) {
	m.events = append(m.events, e)
}

func TestRunner_MaxIterations(t *testing.T) {
	var callCount int
	reporter := &mockReporter{}
	workflow := &mockWorkflow{
		runFunc: func() {
			callCount++
			reporter.Report(Event{Action: "mock"})
		},
	}

	runner := NewRunner(workflow, RunnerConfig{MaxIterations: 3})

	ctx := context.Background()
	for {
		err := runner.RunIteration(ctx)
		if errors.Is(err, ErrMaxIterationsReached) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}

	if runner.Iteration() != 3 {
		t.Errorf("expected 3 iterations, got %d", runner.Iteration())
	}
	if callCount != 3 {
		t.Errorf("expected 3 calls, got %d", callCount)
	}
	if len(reporter.events) != 3 {
		t.Errorf("expected 3 events, got %d", len(reporter.events))
	}
}

func TestRunner_Iteration(t *testing.T) {
	runner := NewRunner(&mockWorkflow{}, RunnerConfig{MaxIterations: 3})
	ctx := context.Background()

	if runner.Iteration() != 0 {
		t.Errorf("expected iteration 0 before any runs, got %d", runner.Iteration())
	}

	for want := 1; want <= 3; want++ {
		if err := runner.RunIteration(ctx); err != nil {
			t.Fatal(err)
		}
		if runner.Iteration() != want {
			t.Errorf("expected iteration %d, got %d", want, runner.Iteration())
		}
	}
}

func TestRunner_UnlimitedIterations(t *testing.T) {
	var callCount int
	workflow := &mockWorkflow{runFunc: func() { callCount++ }}
	runner := NewRunner(workflow, RunnerConfig{MaxIterations: 0})

	ctx := context.Background()
	for i := 0; i < 100; i++ {
		err := runner.RunIteration(ctx)
		if errors.Is(err, ErrMaxIterationsReached) {
			t.Fatal("unexpected ErrMaxIterationsReached with unlimited iterations")
		}
		if err != nil {
			t.Fatal(err)
		}
	}

	if callCount != 100 {
		t.Errorf("expected 100 calls, got %d", callCount)
	}
}

func TestRunner_RunAll(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"unlimited runs once", 0, 1},
		{"single", 1, 1},
		{"repeated", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			runner := NewRunner(&mockWorkflow{runFunc: func() { calls++ }}, RunnerConfig{MaxIterations: tt.limit})
			if err := runner.RunAll(context.Background()); err != nil {
				t.Fatal(err)
			}
			if calls != tt.want {
				t.Errorf("expected %d calls, got %d", tt.want, calls)
			}
		})
	}
}

func TestRunner_ContextCancellation(t *testing.T) {
	var called bool
	runner := NewRunner(&mockWorkflow{runFunc: func() { called = true }}, RunnerConfig{MaxIterations: 100})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.RunIteration(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Error("workflow should not run after cancellation")
	}
	if runner.Iteration() != 0 {
		t.Errorf("expected iteration 0 after cancellation, got %d", runner.Iteration())
	}
}

func TestNullReporter(t *testing.T) {
	NullReporter.Report(Event{Action: "test"})
}

