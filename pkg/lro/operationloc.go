package lro

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// operationLocHandler polls the "Operation-Location" URL (spec.md §4.6.2).
type operationLocHandler struct {
	pipeline runtime.Pipeline
	last     *Response

	opLocURL     *url.URL
	locationURL  *url.URL // optional, captured at construction
	originURL    string
	originMethod string
	finalState   *FinalStateVia
	resultPath   string

	current Status
}

func newOperationLocHandler(
	pipeline runtime.Pipeline,
	initial *Response,
	opts *NewPollerOptions,
) (*operationLocHandler, error) {
	raw, ok := initial.HeaderValue("Operation-Location")
	if !ok {
		return nil, &ProtocolError{Msg: "missing Operation-Location header", Response: initial}
	}
	opLocURL, err := url.Parse(raw)
	if err != nil {
		return nil, &TransportError{Op: "parse Operation-Location header", Err: err}
	}

	h := &operationLocHandler{
		pipeline:     pipeline,
		last:         initial,
		opLocURL:     opLocURL,
		originURL:    initial.RequestURL,
		originMethod: initial.RequestMethod,
	}
	if opts != nil {
		h.finalState = opts.FinalState
		h.resultPath = opts.OperationLocationResultPath
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

func (h *operationLocHandler) Last() *Response { return h.last }

func (h *operationLocHandler) Done() bool { return h.current.IsTerminal() }

func (h *operationLocHandler) Poll(ctx context.Context) (*Response, error) {
	if h.Done() {
		return h.last, nil
	}

	resp, err := doGet(ctx, h.pipeline, h.opLocURL.String())
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

func (h *operationLocHandler) Result(ctx context.Context) (*Response, error) {
	if !h.Done() {
		return nil, &UsageError{Msg: "Result called before Done"}
	}
	if h.current.IsFailed() {
		return nil, &TerminalFailureError{Status: h.current, Response: h.last}
	}

	final := h.last
	if finalURL, ok := h.finalGetURL(); ok {
		resp, err := doGet(ctx, h.pipeline, finalURL)
		if err != nil {
			return nil, err
		}
		if !IsValidStatusCode(resp.StatusCode) {
			return nil, &ProtocolError{Msg: "invalid response status code on final GET", Response: resp}
		}
		h.last = resp
		final = resp
	}

	if h.resultPath == "" {
		return final, nil
	}

	value, err := GetResultPath(final.Body, h.resultPath)
	if err != nil {
		return nil, err
	}
	replaced := *final
	replaced.Body = value
	h.last = &replaced
	return &replaced, nil
}

// finalGetURL implements the final-GET selection cascade of spec.md §4.6.2.
func (h *operationLocHandler) finalGetURL() (string, bool) {
	if h.finalState != nil && *h.finalState == FinalStateLocation && h.locationURL != nil {
		return h.locationURL.String(), true
	}
	if rl, err := GetResourceLocation(h.last.Body); err == nil && rl != nil {
		return rl.String(), true
	}
	if h.originMethod == http.MethodPut || h.originMethod == http.MethodPatch {
		return h.originURL, true
	}
	if h.originMethod == http.MethodPost && h.locationURL != nil {
		return h.locationURL.String(), true
	}
	return "", false
}
