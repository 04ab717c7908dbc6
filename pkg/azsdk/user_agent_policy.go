package azsdk

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// userAgentPolicy prepends a product user-agent token ahead of whatever
// the SDK client itself already set (e.g. "azsdk-go-armresources/..."),
// rather than replacing it: ARM telemetry wants both the calling tool and
// the generated-client identity on every request.
type userAgentPolicy struct {
	productToken string
}

// NewUserAgentPolicy returns a per-call policy that prepends productToken
// to the outbound User-Agent header.
func NewUserAgentPolicy(productToken string) policy.Policy {
	return &userAgentPolicy{productToken: productToken}
}

func (p *userAgentPolicy) Do(req *policy.Request) (*http.Response, error) {
	existing := req.Raw().Header.Get("User-Agent")
	if existing == "" {
		req.Raw().Header.Set("User-Agent", p.productToken)
	} else {
		req.Raw().Header.Set("User-Agent", p.productToken+" "+existing)
	}
	return req.Next()
}

// ClientOptionsBuilderFactory binds a transport, a fixed product
// user-agent, and a cloud configuration, then hands out pre-seeded
// ClientOptionsBuilders; the CLI constructs one factory at startup and
// reuses it for every ARM client it creates over the process lifetime.
type ClientOptionsBuilderFactory struct {
	transport    policy.Transporter
	productToken string
	cloud        cloud.Configuration
}

// NewClientOptionsBuilderFactory returns a factory that seeds every
// builder it produces with transport, a product user-agent policy built
// from productToken, and the given cloud configuration.
func NewClientOptionsBuilderFactory(
	transport policy.Transporter,
	productToken string,
	cloudCfg cloud.Configuration,
) *ClientOptionsBuilderFactory {
	return &ClientOptionsBuilderFactory{transport: transport, productToken: productToken, cloud: cloudCfg}
}

// NewClientOptionsBuilder returns a builder pre-seeded with this factory's
// transport, user-agent policy, and cloud configuration; callers may still
// chain further With* calls before building.
func (f *ClientOptionsBuilderFactory) NewClientOptionsBuilder() *ClientOptionsBuilder {
	return NewClientOptionsBuilder().
		WithTransport(f.transport).
		WithPerCallPolicy(NewUserAgentPolicy(f.productToken)).
		WithCloud(f.cloud)
}
