package lro

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// selectHandler chooses exactly one Handler variant from the initial
// response and request method, in the load-bearing order of spec.md §4.5.
// AsyncOp and OperationLoc are checked ahead of Location because responses
// using those modes commonly also carry a Location header.
func selectHandler(
	pipeline runtime.Pipeline,
	method string,
	initial *Response,
	opts *NewPollerOptions,
) (Handler, error) {
	if !IsValidStatusCode(initial.StatusCode) {
		return nil, &ProtocolError{Msg: "the operation failed or was cancelled", Response: initial, Hard: true}
	}

	if _, ok := initial.HeaderValue("Azure-AsyncOperation"); ok {
		return newAsyncOpHandler(pipeline, initial, opts)
	}

	if _, ok := initial.HeaderValue("Operation-Location"); ok {
		return newOperationLocHandler(pipeline, initial, opts)
	}

	if _, ok := initial.HeaderValue("Location"); ok {
		return newLocationHandler(pipeline, initial)
	}

	if method == http.MethodPut || method == http.MethodPatch {
		return newBodyHandler(pipeline, initial)
	}

	if initial.StatusCode == http.StatusAccepted && (method == http.MethodDelete || method == http.MethodPost) {
		return nil, &ProtocolError{Msg: "response is missing polling URL", Response: initial, Hard: true}
	}

	return newNoopHandler(initial), nil
}
