package providers

import "errors"

// ErrUpstreamFetch reports that the upstream page could not be retrieved.
// It deliberately carries no detail about the cause; providers log the
// underlying error and hand callers this sentinel only.
var ErrUpstreamFetch = errors.New("failed to fetch match data")
