package azsdk

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"go.opentelemetry.io/otel/trace"
)

const cMsCorrelationIdHeader = "x-ms-correlation-request-id"
const cMsGraphCorrelationIdHeader = "client-request-id"

// correlationPolicy stamps the active span's trace ID onto every outbound
// request under the given header name, so ARM can correlate a chain of LRO
// polls back to the CLI invocation that started them. The trace ID is read
// from each request's own context, so a single policy instance is safe to
// reuse across many logical operations sharing one pipeline.
type correlationPolicy struct {
	headerName string
}

func (p *correlationPolicy) Do(req *policy.Request) (*http.Response, error) {
	span := trace.SpanContextFromContext(req.Raw().Context())
	if span.HasTraceID() {
		req.Raw().Header.Set(p.headerName, span.TraceID().String())
	}
	return req.Next()
}

// NewMsCorrelationPolicy stamps x-ms-correlation-request-id, the header
// ARM control-plane endpoints use to tie a polling chain back to its
// originating request.
func NewMsCorrelationPolicy() policy.Policy {
	return &correlationPolicy{headerName: cMsCorrelationIdHeader}
}

// NewMsGraphCorrelationPolicy stamps client-request-id, the header Graph
// endpoints expect instead of ARM's x-ms-correlation-request-id.
func NewMsGraphCorrelationPolicy() policy.Policy {
	return &correlationPolicy{headerName: cMsGraphCorrelationIdHeader}
}
