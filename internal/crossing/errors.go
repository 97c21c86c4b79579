package crossing

import "errors"

var (
	// ErrConfiguration is returned when a world or layout is built from invalid parameters.
	ErrConfiguration = errors.New("crossing: invalid configuration")

	// ErrInvalidAction is returned by Step for actions outside the enum.
	ErrInvalidAction = errors.New("crossing: invalid action")

	// ErrNotReset is returned by Step before the first Reset.
	ErrNotReset = errors.New("crossing: world has not been reset")

	// ErrEpisodeOver is returned by Step once the episode has terminated.
	ErrEpisodeOver = errors.New("crossing: episode is over")
)
