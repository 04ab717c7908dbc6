package lro

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncOpFinalGetURLPutUsesOrigin(t *testing.T) {
	h := http.Header{}
	h.Set("Azure-AsyncOperation", "https://a/op/1")
	initial := newResp(http.StatusCreated, h, `{}`, http.MethodPut, "https://a/x")

	handler, err := newAsyncOpHandler(nil, initial, nil)
	require.NoError(t, err)

	url, ok := handler.finalGetURL()
	assert.True(t, ok)
	assert.Equal(t, "https://a/x", url)
}

func TestAsyncOpFinalGetURLPostOriginalURIFinalState(t *testing.T) {
	h := http.Header{}
	h.Set("Azure-AsyncOperation", "https://a/op/1")
	initial := newResp(http.StatusAccepted, h, `{}`, http.MethodPost, "https://a/action")

	final := FinalStateOriginalURI
	handler, err := newAsyncOpHandler(nil, initial, &NewPollerOptions{FinalState: &final})
	require.NoError(t, err)

	url, ok := handler.finalGetURL()
	assert.True(t, ok)
	assert.Equal(t, "https://a/action", url)
}

func TestAsyncOpFinalGetURLPostFallsBackToLocation(t *testing.T) {
	h := http.Header{}
	h.Set("Azure-AsyncOperation", "https://a/op/1")
	h.Set("Location", "https://a/loc/1")
	initial := newResp(http.StatusAccepted, h, `{}`, http.MethodPost, "https://a/action")

	handler, err := newAsyncOpHandler(nil, initial, nil)
	require.NoError(t, err)

	url, ok := handler.finalGetURL()
	assert.True(t, ok)
	assert.Equal(t, "https://a/loc/1", url)
}

func TestAsyncOpFinalGetURLDeleteHasNoFinalGet(t *testing.T) {
	h := http.Header{}
	h.Set("Azure-AsyncOperation", "https://a/op/1")
	initial := newResp(http.StatusAccepted, h, `{}`, http.MethodDelete, "https://a/x")

	handler, err := newAsyncOpHandler(nil, initial, nil)
	require.NoError(t, err)

	_, ok := handler.finalGetURL()
	assert.False(t, ok)
}

// spec.md §9: final-state-via Location/OperationLocation on a POST is
// asserted unreachable by the metadata layer; if it arrives anyway it is a
// programmer error surfaced as a panic rather than silently accepted.
func TestAsyncOpFinalGetURLPanicsOnLocationFinalStateForPost(t *testing.T) {
	h := http.Header{}
	h.Set("Azure-AsyncOperation", "https://a/op/1")
	initial := newResp(http.StatusAccepted, h, `{}`, http.MethodPost, "https://a/action")

	final := FinalStateLocation
	handler, err := newAsyncOpHandler(nil, initial, &NewPollerOptions{FinalState: &final})
	require.NoError(t, err)

	assert.PanicsWithValue(t,
		&UsageError{Msg: "AsyncOp handler reached with final-state-via Location/OperationLocation on POST"},
		func() { handler.finalGetURL() },
	)
}

func TestAsyncOpSeedsInProgressWhenNoProvisioningState(t *testing.T) {
	h := http.Header{}
	h.Set("Azure-AsyncOperation", "https://a/op/1")
	initial := newResp(http.StatusCreated, h, `{}`, http.MethodPut, "https://a/x")

	handler, err := newAsyncOpHandler(nil, initial, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, handler.current)
	assert.False(t, handler.Done())
}

func TestAsyncOpMissingHeaderIsProtocolError(t *testing.T) {
	initial := newResp(http.StatusCreated, nil, `{}`, http.MethodPut, "https://a/x")
	_, err := newAsyncOpHandler(nil, initial, nil)
	require.Error(t, err)
	var protoErr *ProtocolError
	assert.ErrorAs(t, err, &protoErr)
}
