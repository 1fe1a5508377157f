package filter

import (
	"fmt"
)

type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Err        error
	}

	// EvaluationError indicates a filter could not be evaluated against an item
	EvaluationError struct {
		Expression string
		// Item names the item, its title or name when it has one.
		Item string
		Err  error
	}
)

func (e *CompilationError) Error() string {
	return fmt.Sprintf("failed to compile filter expression '%s': %v", e.Expression, e.Err)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	if e.Item == "" {
		return fmt.Sprintf("failed to evaluate filter '%s': %v", e.Expression, e.Err)
	}
	return fmt.Sprintf("failed to evaluate filter '%s' on '%s': %v", e.Expression, e.Item, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
