package azapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/azure-tools/armpoller/internal/azcoretest"
	"github.com/azure-tools/armpoller/pkg/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Generated ARM clients (armresources and its siblings) describe request
// bodies as typed structs; the façade only ever deals in raw JSON bytes, so
// a caller wiring a generated client's types against this façade just
// marshals through convert.ToMap/json.Marshal first. This exercises that
// seam against a real generated type rather than an ad-hoc map literal.
func TestDoPutAcceptsBodyBuiltFromGeneratedSDKType(t *testing.T) {
	rg := armresources.ResourceGroup{
		Location: convert.RefOf("westus2"),
		Tags:     map[string]*string{"team": convert.RefOf("armpoller")},
	}
	body, err := json.Marshal(rg)
	require.NoError(t, err)

	transport := azcoretest.NewTransport()
	transport.Add(&azcoretest.Route{
		Method: http.MethodPut,
		Responses: []azcoretest.Responder{
			azcoretest.JSON(http.StatusOK, `{"id":"/rg","location":"westus2"}`),
		},
	})

	client := newTestClient(t, transport)
	resp, err := client.Do(context.Background(), Request{
		Method: http.MethodPut,
		Path:   "/rg",
		Body:   body,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"/rg","location":"westus2"}`, string(resp.Body))
}
