package azsdk

import (
	"context"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

type capturingTransport struct {
	headerToCapture string
	captured        string
}

func (c *capturingTransport) Do(req *http.Request) (*http.Response, error) {
	c.captured = req.Header.Get(c.headerToCapture)
	return &http.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: http.NoBody}, nil
}

func runPolicy(t *testing.T, p policy.Policy, headerName string, ctx context.Context) string {
	t.Helper()
	transport := &capturingTransport{headerToCapture: headerName}
	pipeline := newPipelineFor(t, transport, p)

	req, err := newRawRequest(ctx)
	require.NoError(t, err)

	_, err = pipeline.Do(req)
	require.NoError(t, err)
	return transport.captured
}

func TestMsCorrelationPolicyStampsTraceID(t *testing.T) {
	traceID, _ := trace.TraceIDFromHex("0123456789abcdef0123456789abcdef")
	spanID, _ := trace.SpanIDFromHex("0123456789abcdef")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	got := runPolicy(t, NewMsCorrelationPolicy(), cMsCorrelationIdHeader, ctx)
	assert.Equal(t, traceID.String(), got)
}

func TestMsCorrelationPolicyNoopWithoutSpan(t *testing.T) {
	got := runPolicy(t, NewMsCorrelationPolicy(), cMsCorrelationIdHeader, context.Background())
	assert.Empty(t, got)
}

func TestMsGraphCorrelationPolicyUsesClientRequestIdHeader(t *testing.T) {
	traceID, _ := trace.TraceIDFromHex("fedcba9876543210fedcba9876543210")
	spanID, _ := trace.SpanIDFromHex("fedcba9876543210")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	got := runPolicy(t, NewMsGraphCorrelationPolicy(), cMsGraphCorrelationIdHeader, ctx)
	assert.Equal(t, traceID.String(), got)
}
