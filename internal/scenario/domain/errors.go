package domain

import "errors"

var (
	// ErrScenarioNotFound indicates the named scenario does not exist.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrTaskNotFound indicates the named task does not exist in the scenario.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyTaskName indicates a task was added without a name.
	ErrEmptyTaskName = errors.New("task name cannot be empty")
)
