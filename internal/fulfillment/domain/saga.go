package domain

import (
	"context"
	"errors"
	"fmt"
)

type SagaState string

const (
	StateStarted     SagaState = "started"
	StateCommitted   SagaState = "committed"
	StateCompensated SagaState = "compensated"
	// StateStuck means a compensation failed and manual repair is needed.
	StateStuck SagaState = "stuck"
)

// Step is one forward action and the action that reverses it. Undo may be
// nil for the last step of a saga, since nothing runs after it.
type Step struct {
	Name string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

type Saga struct {
	Name  string
	State SagaState
	done  []Step
}

func NewSaga(name string) *Saga {
	return &Saga{Name: name, State: StateStarted}
}

// Run executes steps in order. When a step fails, the steps that completed
// are undone newest first and the step's error is returned, joined with any
// compensation errors.
func (s *Saga) Run(ctx context.Context, steps ...Step) error {
	for _, step := range steps {
		if err := step.Do(ctx); err != nil {
			stepErr := fmt.Errorf("%s: %w", step.Name, err)
			if cerr := s.compensate(ctx); cerr != nil {
				s.State = StateStuck
				return errors.Join(stepErr, cerr)
			}
			s.State = StateCompensated
			return stepErr
		}
		s.done = append(s.done, step)
	}
	s.State = StateCommitted
	return nil
}

// Completed lists the names of the steps that ran successfully.
func (s *Saga) Completed() []string {
	names := make([]string, 0, len(s.done))
	for _, st := range s.done {
		names = append(names, st.Name)
	}
	return names
}

func (s *Saga) compensate(ctx context.Context) error {
	var errs []error
	for i := len(s.done) - 1; i >= 0; i-- {
		st := s.done[i]
		if st.Undo == nil {
			continue
		}
		if err := st.Undo(context.WithoutCancel(ctx)); err != nil {
			errs = append(errs, fmt.Errorf("undo %s: %w", st.Name, err))
		}
	}
	s.done = nil
	return errors.Join(errs...)
}
