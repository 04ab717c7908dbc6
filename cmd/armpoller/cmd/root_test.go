package cmd

import (
	"testing"

	"github.com/azure-tools/armpoller/pkg/lro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFinalStateVia(t *testing.T) {
	cases := map[string]lro.FinalStateVia{
		"azure-async-operation": lro.FinalStateAzureAsyncOp,
		"location":              lro.FinalStateLocation,
		"original-uri":          lro.FinalStateOriginalURI,
		"operation-location":    lro.FinalStateOperationLocation,
	}
	for in, want := range cases {
		got, err := parseFinalStateVia(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := parseFinalStateVia("bogus")
	assert.Error(t, err)
}

func TestBuildPollerOptionsNilWhenUnset(t *testing.T) {
	opts, err := buildPollerOptions("", "")
	require.NoError(t, err)
	assert.Nil(t, opts)
}

func TestBuildPollerOptionsSetsResultPathAndFinalState(t *testing.T) {
	opts, err := buildPollerOptions("location", "properties")
	require.NoError(t, err)
	require.NotNil(t, opts)
	require.NotNil(t, opts.FinalState)
	assert.Equal(t, lro.FinalStateLocation, *opts.FinalState)
	assert.Equal(t, "properties", opts.OperationLocationResultPath)
}
