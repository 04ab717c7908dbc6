// Package cloud wraps azcore/cloud's Configuration with the sovereign
// cloud presets the façade needs, the way azd's pkg/cloud does for the
// Azure SDK clients it wires up.
package cloud

import "github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"

// AzurePublic returns the configuration for global Azure.
func AzurePublic() cloud.Configuration { return cloud.AzurePublic }

// AzureGovernment returns the configuration for Azure Government.
func AzureGovernment() cloud.Configuration { return cloud.AzureGovernment }

// AzureChina returns the configuration for Azure operated by 21Vianet.
func AzureChina() cloud.Configuration { return cloud.AzureChina }
