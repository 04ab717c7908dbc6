package lro

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// asyncOpHandler polls the "Azure-AsyncOperation" URL (spec.md §4.6.1).
type asyncOpHandler struct {
	pipeline runtime.Pipeline
	last     *Response

	asyncURL     *url.URL
	locationURL  *url.URL // optional, captured at construction
	originURL    string
	originMethod string
	finalState   *FinalStateVia

	current Status
}

// newAsyncOpHandler parses the Azure-AsyncOperation header as a URL (fatal
// if missing or unparseable), captures an optional Location header and the
// origin request's URL/method, and seeds current status from the initial
// body's provisioning state, defaulting to InProgress.
func newAsyncOpHandler(
	pipeline runtime.Pipeline,
	initial *Response,
	opts *NewPollerOptions,
) (*asyncOpHandler, error) {
	raw, ok := initial.HeaderValue("Azure-AsyncOperation")
	if !ok {
		return nil, &ProtocolError{Msg: "missing Azure-AsyncOperation header", Response: initial}
	}
	asyncURL, err := url.Parse(raw)
	if err != nil {
		return nil, &TransportError{Op: "parse Azure-AsyncOperation header", Err: err}
	}

	h := &asyncOpHandler{
		pipeline:     pipeline,
		last:         initial,
		asyncURL:     asyncURL,
		originURL:    initial.RequestURL,
		originMethod: initial.RequestMethod,
	}
	if opts != nil {
		h.finalState = opts.FinalState
	}
	if loc, ok := initial.HeaderValue("Location"); ok {
		if locURL, err := url.Parse(loc); err == nil {
			h.locationURL = locURL
		}
	}

	if st, ok := GetProvisioningState(initial.Body); ok {
		h.current = st
	} else {
		h.current = StatusInProgress
	}
	return h, nil
}

func (h *asyncOpHandler) Last() *Response { return h.last }

func (h *asyncOpHandler) Done() bool { return h.current.IsTerminal() }

func (h *asyncOpHandler) Poll(ctx context.Context) (*Response, error) {
	if h.Done() {
		return h.last, nil
	}

	resp, err := doGet(ctx, h.pipeline, h.asyncURL.String())
	if err != nil {
		return nil, err
	}
	h.last = resp

	if !IsValidStatusCode(resp.StatusCode) {
		return nil, &ProtocolError{Msg: "invalid response status code", Response: resp}
	}

	status, ok := GetLROStatus(resp.Body)
	if !ok {
		return nil, &ProtocolError{Msg: "the response did not contain a status", Response: resp}
	}
	h.current = status
	return resp, nil
}

func (h *asyncOpHandler) Result(ctx context.Context) (*Response, error) {
	if !h.Done() {
		return nil, &UsageError{Msg: "Result called before Done"}
	}
	if h.current.IsFailed() {
		return nil, &TerminalFailureError{Status: h.current, Response: h.last}
	}

	finalURL, ok := h.finalGetURL()
	if !ok {
		return h.last, nil
	}

	resp, err := doGet(ctx, h.pipeline, finalURL)
	if err != nil {
		return nil, err
	}
	if !IsValidStatusCode(resp.StatusCode) {
		return nil, &ProtocolError{Msg: "invalid response status code on final GET", Response: resp}
	}
	h.last = resp
	return resp, nil
}

// finalGetURL implements the per-method final-GET selection of spec.md
// §4.6.1. The Location/OperationLocation final-state-via combination on a
// POST is asserted unreachable by the metadata layer (spec.md §9): if it
// ever arrives here it is a programmer error, surfaced as a UsageError
// rather than silently accepted.
func (h *asyncOpHandler) finalGetURL() (string, bool) {
	switch h.originMethod {
	case http.MethodPut, http.MethodPatch:
		return h.originURL, true
	case http.MethodPost:
		if h.finalState != nil {
			switch *h.finalState {
			case FinalStateAzureAsyncOp:
				return "", false
			case FinalStateOriginalURI:
				return h.originURL, true
			case FinalStateLocation, FinalStateOperationLocation:
				panic(&UsageError{
					Msg: "AsyncOp handler reached with final-state-via Location/OperationLocation on POST",
				})
			}
		}
		if h.locationURL != nil {
			return h.locationURL.String(), true
		}
		return "", false
	default: // DELETE, GET, HEAD
		return "", false
	}
}
