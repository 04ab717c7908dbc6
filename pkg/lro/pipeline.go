package lro

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// doGet issues a bare GET through pipeline and materializes a Response. It
// is the one place every handler funnels its network I/O through, so
// cancellation (spec.md §5) and body-collection errors are handled
// uniformly.
func doGet(ctx context.Context, pipeline runtime.Pipeline, rawURL string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, &CancellationError{Err: err}
	}

	req, err := runtime.NewRequest(ctx, http.MethodGet, rawURL)
	if err != nil {
		return nil, &TransportError{Op: "build poll request", Err: err}
	}

	httpResp, err := pipeline.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &CancellationError{Err: ctx.Err()}
		}
		return nil, &TransportError{Op: "poll", Err: err}
	}

	resp, err := NewResponse(httpResp)
	if err != nil {
		return nil, &TransportError{Op: "collect poll response body", Err: err}
	}
	return resp, nil
}
