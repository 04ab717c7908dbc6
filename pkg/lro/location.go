package lro

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// locationHandler polls the "Location" URL (spec.md §4.6.3). It is the
// fallback for services that announce LRO progress via redirect-style
// Location headers without AsyncOperation or Operation-Location.
type locationHandler struct {
	pipeline runtime.Pipeline
	last     *Response

	pollURL *url.URL
	current Status
}

func newLocationHandler(pipeline runtime.Pipeline, initial *Response) (*locationHandler, error) {
	raw, ok := initial.HeaderValue("Location")
	if !ok {
		return nil, &ProtocolError{Msg: "missing Location header", Response: initial}
	}
	pollURL, err := url.Parse(raw)
	if err != nil {
		return nil, &TransportError{Op: "parse Location header", Err: err}
	}

	h := &locationHandler{pipeline: pipeline, last: initial, pollURL: pollURL}
	if st, ok := GetProvisioningState(initial.Body); ok {
		h.current = st
	} else {
		h.current = StatusInProgress
	}
	return h, nil
}

func (h *locationHandler) Last() *Response { return h.last }

func (h *locationHandler) Done() bool { return h.current.IsTerminal() }

func (h *locationHandler) Poll(ctx context.Context) (*Response, error) {
	if h.Done() {
		return h.last, nil
	}

	resp, err := doGet(ctx, h.pipeline, h.pollURL.String())
	if err != nil {
		return nil, err
	}
	h.last = resp

	// The Location header in the poll response may point to a new URL for
	// subsequent rounds (spec.md §4.6.3).
	if loc, ok := resp.HeaderValue("Location"); ok {
		if locURL, err := url.Parse(loc); err == nil {
			h.pollURL = locURL
		}
	}

	h.current = nextLocationStatus(h.current, resp)
	return resp, nil
}

// nextLocationStatus implements the state cascade of spec.md §4.6.3: body
// provisioning state wins if present; otherwise the HTTP status code
// decides, with transient 408/429/500/502/503/504 codes preserving the current
// in-progress state rather than failing the operation outright (P7).
func nextLocationStatus(current Status, resp *Response) Status {
	if st, ok := GetProvisioningState(resp.Body); ok {
		return st
	}
	switch {
	case resp.StatusCode == http.StatusAccepted:
		return StatusInProgress
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return StatusSucceeded
	case IsNonTerminalHTTPStatusCode(resp.StatusCode):
		return current
	default:
		return StatusFailed
	}
}

func (h *locationHandler) Result(ctx context.Context) (*Response, error) {
	if !h.Done() {
		return nil, &UsageError{Msg: "Result called before Done"}
	}
	if h.current.IsFailed() {
		return nil, &TerminalFailureError{Status: h.current, Response: h.last}
	}
	return h.last, nil
}
