package azsdk

import (
	"context"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// newPipelineFor builds a minimal pipeline running a single per-call policy
// ahead of transport, for unit-testing one policy.Policy in isolation.
func newPipelineFor(t *testing.T, transport policy.Transporter, p policy.Policy) runtime.Pipeline {
	t.Helper()
	return runtime.NewPipeline("azsdktest", "0.0.0", runtime.PipelineOptions{
		PerCall: []policy.Policy{p},
	}, &policy.ClientOptions{Transport: transport})
}

func newRawRequest(ctx context.Context) (*policy.Request, error) {
	return runtime.NewRequest(ctx, http.MethodGet, "https://management.azure.com/resource")
}
