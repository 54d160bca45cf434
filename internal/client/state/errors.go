package state

import "errors"

// Errors produced by the projector itself. They surface as the ERROR state
// exactly like gateway failures.
var (
	// ErrNoSnapshot indicates that an action needs a loaded collection first
	ErrNoSnapshot = errors.New("servers are not loaded yet")

	// ErrServerNotInSnapshot indicates that a response refers to a server the snapshot does not hold
	ErrServerNotInSnapshot = errors.New("server is not present in the loaded list")

	// ErrMissingRecord indicates that a single-record response came back without data.server
	ErrMissingRecord = errors.New("response contains no server record")
)
