package lro

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/benbjohnson/clock"
)

const defaultPollFrequency = 30 * time.Second

// PollUntilDoneOptions configures PollUntilDone (spec.md §6.1).
type PollUntilDoneOptions struct {
	// Frequency is the fallback delay between polls when the response
	// carries no Retry-After header. Zero means "use the 30s default";
	// a non-zero value below 1s is clamped up to 1s.
	Frequency time.Duration
}

// Poller owns exactly one Handler variant and caches the last observed
// Response. Once the handler is Done, Poll is a no-op and Result may be
// called to produce the terminal verdict (issuing a final GET if needed).
type Poller struct {
	pipeline runtime.Pipeline
	handler  Handler
	clock    clock.Clock
}

// NewPoller runs the strategy selector (spec.md §4.5) against the initial
// response and constructs the chosen handler. It fails exactly when the
// selector rejects the response.
func NewPoller(
	pipeline runtime.Pipeline,
	method string,
	initial *Response,
	opts *NewPollerOptions,
) (*Poller, error) {
	handler, err := selectHandler(pipeline, method, initial, opts)
	if err != nil {
		return nil, err
	}
	return &Poller{pipeline: pipeline, handler: handler, clock: clock.New()}, nil
}

// SetClock overrides the clock used for PollUntilDone's inter-poll sleep.
// Production callers never need this; tests use it to make the sleep
// instantaneous and deterministic.
func (p *Poller) SetClock(c clock.Clock) { p.clock = c }

// Done reports whether the handler has reached a terminal status.
func (p *Poller) Done() bool { return p.handler.Done() }

// Poll advances the operation by one round-trip, or returns the cached
// response with no I/O if already Done (P1).
func (p *Poller) Poll(ctx context.Context) (*Response, error) {
	if p.handler.Done() {
		return p.handler.Last(), nil
	}
	return p.handler.Poll(ctx)
}

// Result retrieves the terminal representation of the operation. Calling
// it before Done is true is a usage error.
func (p *Poller) Result(ctx context.Context) (*Response, error) {
	if !p.handler.Done() {
		return nil, &UsageError{Msg: "Result called before Done"}
	}
	return p.handler.Result(ctx)
}

// PollUntilDone loops Poll, sleeps for the next delay (Retry-After header
// if present, else opts.Frequency, else the 30s default), and repeats
// until the handler reaches a terminal status, then returns Result.
// Cancellation of ctx is observed at every suspension point, both the
// in-flight poll and the sleep, and returns a CancellationError without
// issuing any further polls.
func (p *Poller) PollUntilDone(ctx context.Context, opts *PollUntilDoneOptions) (*Response, error) {
	for {
		resp, err := p.Poll(ctx)
		if err != nil {
			return nil, err
		}

		if p.Done() {
			return p.Result(ctx)
		}

		delay := nextDelay(resp, opts)
		timer := p.clock.Timer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, &CancellationError{Err: ctx.Err()}
		case <-timer.C:
		}
	}
}

// nextDelay implements the Retry-After precedence of spec.md §4.7/§4.3/P8:
// the response's own Retry-After headers always win over the caller's
// requested frequency.
func nextDelay(resp *Response, opts *PollUntilDoneOptions) time.Duration {
	if resp != nil {
		if d, ok := RetryAfter(resp.Header); ok {
			return d
		}
	}
	if opts != nil && opts.Frequency > 0 {
		if opts.Frequency < time.Second {
			return time.Second
		}
		return opts.Frequency
	}
	return defaultPollFrequency
}
