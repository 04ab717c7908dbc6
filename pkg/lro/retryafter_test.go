package lro

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryAfterPrecedence(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After-Ms", "1500")
	h.Set("X-Ms-Retry-After-Ms", "9000")
	h.Set("Retry-After", "30")

	d, ok := RetryAfter(h)
	assert.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, d)
}

func TestRetryAfterFallsBackToXMsRetryAfterMs(t *testing.T) {
	h := http.Header{}
	h.Set("X-Ms-Retry-After-Ms", "2500")
	h.Set("Retry-After", "30")

	d, ok := RetryAfter(h)
	assert.True(t, ok)
	assert.Equal(t, 2500*time.Millisecond, d)
}

func TestRetryAfterSeconds(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "5")

	d, ok := RetryAfter(h)
	assert.True(t, ok)
	assert.Equal(t, 5*time.Second, d)
}

func TestRetryAfterHTTPDate(t *testing.T) {
	fixedNow := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	orig := NowFunc
	NowFunc = func() time.Time { return fixedNow }
	defer func() { NowFunc = orig }()

	future := fixedNow.Add(10 * time.Second)
	h := http.Header{}
	h.Set("Retry-After", future.Format(http.TimeFormat))

	d, ok := RetryAfter(h)
	assert.True(t, ok)
	assert.Equal(t, 10*time.Second, d)
}

func TestRetryAfterAbsent(t *testing.T) {
	_, ok := RetryAfter(http.Header{})
	assert.False(t, ok)
}

func TestRetryAfterUnparseableIgnored(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "not-a-number-or-date")
	_, ok := RetryAfter(h)
	assert.False(t, ok)
}

func TestIsValidStatusCode(t *testing.T) {
	for _, c := range []int{http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent} {
		assert.True(t, IsValidStatusCode(c))
	}
	for _, c := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusMovedPermanently} {
		assert.False(t, IsValidStatusCode(c))
	}
}

func TestIsNonTerminalHTTPStatusCode(t *testing.T) {
	for _, c := range []int{http.StatusRequestTimeout, http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout} {
		assert.True(t, IsNonTerminalHTTPStatusCode(c))
	}
	assert.False(t, IsNonTerminalHTTPStatusCode(http.StatusNotFound))
}
