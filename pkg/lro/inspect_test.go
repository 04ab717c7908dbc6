package lro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProvisioningState(t *testing.T) {
	st, ok := GetProvisioningState([]byte(`{"properties":{"provisioningState":"Succeeded"}}`))
	assert.True(t, ok)
	assert.Equal(t, StatusSucceeded, st)
}

func TestGetProvisioningStateMissingCases(t *testing.T) {
	cases := []string{
		``,
		`not json`,
		`[]`,
		`{}`,
		`{"properties": "not-an-object"}`,
		`{"properties":{}}`,
		`{"properties":{"provisioningState": 1}}`,
	}
	for _, body := range cases {
		_, ok := GetProvisioningState([]byte(body))
		assert.False(t, ok, "body: %s", body)
	}
}

func TestGetLROStatus(t *testing.T) {
	st, ok := GetLROStatus([]byte(`{"status":"InProgress"}`))
	assert.True(t, ok)
	assert.Equal(t, StatusInProgress, st)

	_, ok = GetLROStatus([]byte(`{}`))
	assert.False(t, ok)
}

func TestGetResourceLocation(t *testing.T) {
	u, err := GetResourceLocation([]byte(`{"resourceLocation":"https://management.azure.com/resource"}`))
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "https://management.azure.com/resource", u.String())

	u, err = GetResourceLocation([]byte(`{}`))
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestGetResultPath(t *testing.T) {
	v, err := GetResultPath([]byte(`{"properties":{"foo":"bar"}}`), "properties")
	require.NoError(t, err)
	assert.JSONEq(t, `{"foo":"bar"}`, string(v))

	_, err = GetResultPath([]byte(`{}`), "missing")
	require.Error(t, err)
	var protoErr *ProtocolError
	assert.ErrorAs(t, err, &protoErr)
}
