package routing

import "errors"

const (
	// number of settled vertices between two ctx.Err() checks.
	CTX_CHECK_INTERVAL = 1024
)

var (
	ErrVertexNotFound   = errors.New("vertex not found in graph")
	ErrEmptyNetwork     = errors.New("network has no footway points")
	ErrUnreachable      = errors.New("destination unreachable")
	ErrInconsistentPath = errors.New("predecessor chain does not lead back to source")
)
