package azapi

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/streaming"
	"github.com/azure-tools/armpoller/pkg/lro"
)

// ClientOptions configures Client (spec.md §4.8, SPEC_FULL.md §4.11).
type ClientOptions struct {
	Endpoint   *url.URL
	Cloud      cloud.Configuration
	Pipeline   runtime.Pipeline
	APIVersion string
}

// Request is the initial HTTP request the façade builds and sends (spec.md
// §6.1): a method, a path relative to the endpoint, and an optional JSON
// body.
type Request struct {
	Method string
	Path   string
	Body   []byte

	// PollerOptions carries the metadata hints a generated operation knows
	// about its own LRO shape (final-state-via, result-path) which the
	// selector cannot infer from the wire alone.
	PollerOptions *lro.NewPollerOptions
	// PollOptions overrides the poller's default cadence when the
	// response carries no Retry-After header. Nil means "use defaults."
	PollOptions *lro.PollUntilDoneOptions
}

// Client sends ARM-style requests and drives any resulting LRO to
// completion.
type Client struct {
	opts ClientOptions
}

// NewClient builds a façade Client over an already-constructed pipeline.
func NewClient(opts ClientOptions) *Client {
	return &Client{opts: opts}
}

// Do builds the request URL, sends it through the pipeline, and, for
// mutating methods, drives the resulting operation to completion via
// pkg/lro before returning. GET/HEAD requests never reach the poller.
func (c *Client) Do(ctx context.Context, req Request) (*lro.Response, error) {
	rawURL := c.buildURL(req.Path)

	httpReq, err := runtime.NewRequest(ctx, req.Method, rawURL)
	if err != nil {
		return nil, &lro.TransportError{Op: "build request", Err: err}
	}
	httpReq.Raw().Header.Set("Accept", "application/json")
	if len(req.Body) > 0 {
		if err := httpReq.SetBody(streaming.NopCloser(bytes.NewReader(req.Body)), "application/json"); err != nil {
			return nil, &lro.TransportError{Op: "set request body", Err: err}
		}
	}

	rawResp, err := c.opts.Pipeline.Do(httpReq)
	if err != nil {
		return nil, &lro.TransportError{Op: "send request", Err: err}
	}

	resp, err := lro.NewResponse(rawResp)
	if err != nil {
		return nil, &lro.TransportError{Op: "collect response body", Err: err}
	}

	if !isMutatingMethod(req.Method) {
		return resp, nil
	}

	poller, err := lro.NewPoller(c.opts.Pipeline, req.Method, resp, req.PollerOptions)
	if err != nil {
		// A Hard ProtocolError (invalid status code, or a 202 DELETE/POST
		// with no polling header) is always a real protocol violation and
		// always propagates. Any other selector rejection of an
		// otherwise-valid response is treated as a best-effort signal
		// that this was a synchronous completion, not an LRO; the
		// materialized response is returned as-is (spec.md §4.8).
		var protoErr *lro.ProtocolError
		if errors.As(err, &protoErr) && !protoErr.Hard && lro.IsValidStatusCode(resp.StatusCode) {
			return resp, nil
		}
		return nil, err
	}

	return poller.PollUntilDone(ctx, req.PollOptions)
}

func (c *Client) buildURL(path string) string {
	joined := c.opts.Endpoint.JoinPath(path)
	q := joined.Query()
	q.Set("api-version", c.opts.APIVersion)
	joined.RawQuery = q.Encode()
	return joined.String()
}

func isMutatingMethod(method string) bool {
	switch method {
	case http.MethodPut, http.MethodPost, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// AuthScope is the bearer-token scope the pipeline's auth policy requests
// for a given ARM-style endpoint: "<endpoint>/.default" (spec.md §4.8).
func AuthScope(endpoint *url.URL) string {
	return endpoint.Scheme + "://" + endpoint.Host + "/.default"
}
