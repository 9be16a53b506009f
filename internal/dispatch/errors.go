package dispatch

import "errors"

var (
	// ErrNoExecutable is returned when a Spec names no executable.
	ErrNoExecutable = errors.New("no executable given")

	// ErrInvalidInput is returned when an input line is not valid UTF-8 text.
	ErrInvalidInput = errors.New("input is not valid UTF-8")

	// ErrLaunch is returned when a command could not be started.
	ErrLaunch = errors.New("failed to launch")
)
