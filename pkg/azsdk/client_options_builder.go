// Package azsdk assembles azcore pipeline configuration: client options,
// correlation-id policies, and the user-agent policy. It is the ambient
// plumbing beneath pkg/azapi's façade, grounded on azd's pkg/azsdk.
package azsdk

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// ClientOptionsBuilder accumulates transport, policies, and cloud
// configuration, then renders either policy.ClientOptions or this
// package's ArmClientOptions, mirroring azd's azsdk.ClientOptionsBuilder.
type ClientOptionsBuilder struct {
	transport        policy.Transporter
	perCallPolicies  []policy.Policy
	perRetryPolicies []policy.Policy
	cloud            cloud.Configuration
}

// NewClientOptionsBuilder returns an empty builder; callers chain With*
// calls before Build*.
func NewClientOptionsBuilder() *ClientOptionsBuilder {
	return &ClientOptionsBuilder{}
}

func (b *ClientOptionsBuilder) WithTransport(transport policy.Transporter) *ClientOptionsBuilder {
	b.transport = transport
	return b
}

func (b *ClientOptionsBuilder) WithPerCallPolicy(p policy.Policy) *ClientOptionsBuilder {
	b.perCallPolicies = append(b.perCallPolicies, p)
	return b
}

func (b *ClientOptionsBuilder) WithPerRetryPolicy(p policy.Policy) *ClientOptionsBuilder {
	b.perRetryPolicies = append(b.perRetryPolicies, p)
	return b
}

func (b *ClientOptionsBuilder) WithCloud(c cloud.Configuration) *ClientOptionsBuilder {
	b.cloud = c
	return b
}

// BuildCoreClientOptions renders a policy.ClientOptions suitable for
// data-plane clients (azcore/runtime.NewPipeline).
func (b *ClientOptionsBuilder) BuildCoreClientOptions() *policy.ClientOptions {
	return &policy.ClientOptions{
		Transport:        b.transport,
		PerCallPolicies:  b.perCallPolicies,
		PerRetryPolicies: b.perRetryPolicies,
		Cloud:            b.cloud,
	}
}

// ArmClientOptions mirrors arm.ClientOptions's shape without importing the
// resourcemanager arm package, so callers that only need the pipeline
// knobs (not the ARM-specific auth policy wiring) can stay on
// policy.ClientOptions.
type ArmClientOptions struct {
	Transport        policy.Transporter
	PerCallPolicies  []policy.Policy
	PerRetryPolicies []policy.Policy
	Cloud            cloud.Configuration
}

// BuildArmClientOptions renders the same knobs as BuildCoreClientOptions,
// as an ArmClientOptions; it is not an arm.ClientOptions, so a generated
// armresources-style client needs its fields copied across.
func (b *ClientOptionsBuilder) BuildArmClientOptions() *ArmClientOptions {
	return &ArmClientOptions{
		Transport:        b.transport,
		PerCallPolicies:  b.perCallPolicies,
		PerRetryPolicies: b.perRetryPolicies,
		Cloud:            b.cloud,
	}
}
