package lro

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// bodyHandler polls the original request URL, reading provisioning state
// from the resource body itself (spec.md §4.6.4). Applicable only to
// PUT/PATCH, since those are the only methods ARM defines
// provisioning-state-in-body semantics for.
type bodyHandler struct {
	pipeline runtime.Pipeline
	last     *Response

	pollURL string
	current Status
}

func newBodyHandler(pipeline runtime.Pipeline, initial *Response) (*bodyHandler, error) {
	h := &bodyHandler{pipeline: pipeline, last: initial, pollURL: initial.RequestURL}

	switch initial.StatusCode {
	case http.StatusCreated:
		if st, ok := GetProvisioningState(initial.Body); ok {
			h.current = st
		} else {
			h.current = StatusInProgress
		}
	case http.StatusOK:
		if st, ok := GetProvisioningState(initial.Body); ok {
			h.current = st
		} else {
			h.current = StatusSucceeded
		}
	case http.StatusNoContent:
		h.current = StatusSucceeded
	default:
		h.current = StatusInProgress
	}
	return h, nil
}

func (h *bodyHandler) Last() *Response { return h.last }

func (h *bodyHandler) Done() bool { return h.current.IsTerminal() }

func (h *bodyHandler) Poll(ctx context.Context) (*Response, error) {
	if h.Done() {
		return h.last, nil
	}

	resp, err := doGet(ctx, h.pipeline, h.pollURL)
	if err != nil {
		return nil, err
	}
	h.last = resp

	if !IsValidStatusCode(resp.StatusCode) {
		return nil, &ProtocolError{Msg: "invalid response status code", Response: resp}
	}

	if resp.StatusCode == http.StatusNoContent {
		h.current = StatusSucceeded
		return resp, nil
	}

	if len(resp.Body) == 0 {
		return nil, &ProtocolError{Msg: "non-204 response has no response body", Response: resp}
	}

	if st, ok := GetProvisioningState(resp.Body); ok {
		h.current = st
	} else {
		// A response body without a provisioning state is treated as
		// terminal success (spec.md §4.6.4).
		h.current = StatusSucceeded
	}
	return resp, nil
}

func (h *bodyHandler) Result(ctx context.Context) (*Response, error) {
	if !h.Done() {
		return nil, &UsageError{Msg: "Result called before Done"}
	}
	if h.current.IsFailed() {
		return nil, &TerminalFailureError{Status: h.current, Response: h.last}
	}
	return h.last, nil
}
