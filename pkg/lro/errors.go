package lro

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TransportError wraps a failure in the pipeline itself: I/O, body
// collection, or URL parsing. It never carries a Response because the
// failure happened before one could be fully materialized.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("lro: %s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError is raised when a response violates the ARM LRO contract:
// a missing required header, a missing "status" field, an empty body where
// one was required, or an initial status code outside the valid set.
//
// Hard distinguishes the two selector-time rejections (invalid initial
// status code, and a 202 DELETE/POST with no polling header, both ARM RPC
// spec hard errors per spec.md §4.5) from a hypothetical future selector
// rule that rejects a response as merely "not this LRO mode" without the
// response itself being malformed. Callers building a façade on top of the
// selector (pkg/azapi.Client.Do) must never treat a Hard ProtocolError as a
// synchronous success, even when the response's status code is otherwise
// valid.
type ProtocolError struct {
	Msg      string
	Response *Response
	Hard     bool
}

func (e *ProtocolError) Error() string { return "lro: " + e.Msg }

// TerminalFailureError is returned when a handler reaches a failed terminal
// status (Failed, Canceled, Cancelled). The offending Response is preserved
// verbatim for diagnostics, per spec.md §7.
type TerminalFailureError struct {
	Status   Status
	Response *Response
}

func (e *TerminalFailureError) Error() string {
	return fmt.Sprintf("lro: operation reached terminal status %s: %v", e.Status, e.Response.AsError())
}

func (e *TerminalFailureError) Unwrap() error { return e.Response.AsError() }

// CancellationError is returned when ctx is cancelled during a sleep or an
// in-flight poll. The Poller remains usable afterward with a fresh ctx.
type CancellationError struct {
	Err error
}

func (e *CancellationError) Error() string { return fmt.Sprintf("lro: cancelled: %v", e.Err) }
func (e *CancellationError) Unwrap() error { return e.Err }

// UsageError indicates a programmer error: calling Result before Done is
// true, or metadata claiming a final-state-via combination the AsyncOp
// handler can never legally observe (spec.md §9).
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return "lro: usage error: " + e.Msg }

// AzureErrorDetail is one node of an ARM error document's nested "details"
// tree: {"code": "...", "message": "...", "details": [...]}.
type AzureErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Target  string              `json:"target,omitempty"`
	Details []*AzureErrorDetail `json:"details,omitempty"`
}

func (d *AzureErrorDetail) Error() string {
	switch {
	case d.Code != "" && d.Message != "":
		return d.Code + ": " + d.Message
	case d.Code != "":
		return d.Code
	case d.Message != "":
		return d.Message
	default:
		return "arm error"
	}
}

// Unwrap exposes the nested details so errors.As can walk the whole tree
// looking for a specific *AzureErrorDetail, the way azd's
// DeploymentErrorLine does for ARM deployment failures.
func (d *AzureErrorDetail) Unwrap() []error {
	if len(d.Details) == 0 {
		return nil
	}
	errs := make([]error, len(d.Details))
	for i, inner := range d.Details {
		errs[i] = inner
	}
	return errs
}

type azureErrorEnvelope struct {
	Error *AzureErrorDetail `json:"error"`
}

// AzureError is the top-level ARM error, wrapping the parsed detail tree
// (when the body is valid ARM-error JSON) alongside the raw status code and
// body for callers that want the unparsed diagnostic text.
type AzureError struct {
	StatusCode int
	RawBody    []byte
	Detail     *AzureErrorDetail
}

// NewAzureError parses body as an ARM error envelope, falling back to a
// detail-less error carrying the raw body when parsing fails or the
// envelope has no "error" member.
func NewAzureError(statusCode int, body []byte) *AzureError {
	ae := &AzureError{StatusCode: statusCode, RawBody: body}

	var env azureErrorEnvelope
	if len(body) > 0 && json.Unmarshal(body, &env) == nil && env.Error != nil {
		ae.Detail = env.Error
	}
	return ae
}

func (e *AzureError) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("lro: arm error (status %d): %s", e.StatusCode, e.Detail.Error())
	}
	if len(e.RawBody) == 0 {
		return fmt.Sprintf("lro: http status %d", e.StatusCode)
	}
	return fmt.Sprintf("lro: http status %d: %s", e.StatusCode, string(e.RawBody))
}

// Unwrap lets errors.As find the parsed *AzureErrorDetail tree when present.
func (e *AzureError) Unwrap() error {
	if e.Detail == nil {
		return nil
	}
	return e.Detail
}

// IsCancellation reports whether err is, or wraps, a CancellationError.
func IsCancellation(err error) bool {
	var ce *CancellationError
	return errors.As(err, &ce)
}
