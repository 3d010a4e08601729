package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSagaCommits(t *testing.T) {
	var trace []string
	s := NewSaga("create")

	err := s.Run(context.Background(),
		Step{Name: "a", Do: func(context.Context) error { trace = append(trace, "a"); return nil }},
		Step{Name: "b", Do: func(context.Context) error { trace = append(trace, "b"); return nil }},
	)

	require.NoError(t, err)
	assert.Equal(t, StateCommitted, s.State)
	assert.Equal(t, []string{"a", "b"}, trace)
	assert.Equal(t, []string{"a", "b"}, s.Completed())
}

func TestSagaCompensatesInReverse(t *testing.T) {
	var trace []string
	errBoom := errors.New("boom")
	step := func(name string) Step {
		return Step{
			Name: name,
			Do:   func(context.Context) error { trace = append(trace, name); return nil },
			Undo: func(context.Context) error { trace = append(trace, "undo "+name); return nil },
		}
	}
	s := NewSaga("create")

	err := s.Run(context.Background(), step("a"), step("b"),
		Step{Name: "c", Do: func(context.Context) error { return errBoom }},
	)

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, StateCompensated, s.State)
	assert.Equal(t, []string{"a", "b", "undo b", "undo a"}, trace)
}

func TestSagaStuckWhenUndoFails(t *testing.T) {
	errBoom := errors.New("boom")
	errUndo := errors.New("undo failed")
	s := NewSaga("cancel")

	err := s.Run(context.Background(),
		Step{Name: "a", Do: func(context.Context) error { return nil }, Undo: func(context.Context) error { return errUndo }},
		Step{Name: "b", Do: func(context.Context) error { return errBoom }},
	)

	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, err, errUndo)
	assert.Equal(t, StateStuck, s.State)
}
