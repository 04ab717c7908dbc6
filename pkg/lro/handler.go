package lro

import "context"

// Handler is the contract every polling mode implements (spec.md §4.6).
// Exactly one Handler variant is chosen per Poller, at construction time,
// and is never swapped for another variant afterward.
type Handler interface {
	// Poll issues one network round-trip and advances internal state. It
	// must be idempotent once Done is true: no network I/O, cached
	// response returned unchanged (P1).
	Poll(ctx context.Context) (*Response, error)

	// Done reports whether the handler's internal status is terminal.
	Done() bool

	// Result is only ever called once Done is true. On failure it returns
	// the cached response as a structured error; on success it may issue
	// a final GET per the handler's own rules and returns the retrieved
	// (or cached) response.
	Result(ctx context.Context) (*Response, error)

	// Last returns the most recently cached response without triggering
	// any I/O, used by Poller.Poll's done-shortcut.
	Last() *Response
}

// NewPollerOptions configures handler construction (spec.md §6.1).
type NewPollerOptions struct {
	FinalState                 *FinalStateVia
	OperationLocationResultPath string
}
