package remote

import (
	"errors"
	"fmt"
)

// Gateway errors. ErrRemote is the base every failure wraps, so callers
// that only care about "the persistence endpoint failed" can check it
// with errors.Is.
var (
	// ErrRemote is the base error for all persistence-endpoint failures.
	ErrRemote = errors.New("remote store error")

	// ErrNotConfigured indicates the endpoint URL was never set up.
	ErrNotConfigured = fmt.Errorf("%w: endpoint not configured", ErrRemote)

	// ErrUnavailable indicates the request never produced a response
	// (connection failure, timeout, cancelled context).
	ErrUnavailable = fmt.Errorf("%w: endpoint unavailable", ErrRemote)

	// ErrBadStatus indicates the endpoint answered with a non-2xx status.
	ErrBadStatus = fmt.Errorf("%w: unexpected HTTP status", ErrRemote)

	// ErrBadEnvelope indicates the response body was not a well-formed
	// success/failure envelope (non-JSON or missing the status field).
	ErrBadEnvelope = fmt.Errorf("%w: malformed response envelope", ErrRemote)

	// ErrRejected indicates the endpoint returned an explicit failure
	// envelope. The wrapped message is the server-reported one when
	// present, or a generic fallback.
	ErrRejected = fmt.Errorf("%w: request rejected", ErrRemote)
)
