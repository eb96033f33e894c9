package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

type spinResult[T any] struct {
	value T
	err   error
}

// Spin runs action behind a spinner titled title and returns its result.
// Without a TTY the action runs directly. Cancelling ctx stops the spinner
// and returns ctx.Err() without waiting for the action.
func Spin[T any](ctx context.Context, title string, action func(context.Context) (T, error)) (T, error) {
	if !IsTTY() {
		return action(ctx)
	}

	done := make(chan spinResult[T], 1)
	go func() {
		v, err := action(ctx)
		done <- spinResult[T]{value: v, err: err}
	}()

	var (
		res      spinResult[T]
		finished bool
	)
	err := spinner.New().
		Title(title).
		Action(func() {
			select {
			case res = <-done:
				finished = true
			case <-ctx.Done():
			}
		}).
		Run()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("spinner error: %w", err)
	}

	if !finished {
		var zero T
		return zero, ctx.Err()
	}
	return res.value, res.err
}
