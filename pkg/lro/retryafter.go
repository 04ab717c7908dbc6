package lro

import (
	"net/http"
	"strconv"
	"time"
)

// NowFunc is overridable in tests so the "RFC-2822 date" branch of
// RetryAfter is deterministic.
var NowFunc = time.Now

// RetryAfter probes, in order, "Retry-After-Ms", "X-Ms-Retry-After-Ms", and
// "Retry-After" (header lookup is case-insensitive via http.Header.Get) and
// returns the delay the server asked the caller to wait before polling
// again. It returns (0, false) if no header is present or every present
// header fails to parse.
func RetryAfter(h http.Header) (time.Duration, bool) {
	if d, ok := retryAfterMillis(h, "Retry-After-Ms"); ok {
		return d, true
	}
	if d, ok := retryAfterMillis(h, "X-Ms-Retry-After-Ms"); ok {
		return d, true
	}
	if v := h.Get("Retry-After"); v != "" {
		if secs, err := strconv.ParseUint(v, 10, 64); err == nil {
			return time.Duration(secs) * time.Second, true
		}
		if t, err := http.ParseTime(v); err == nil {
			d := t.Sub(NowFunc())
			if d < 0 {
				d = 0
			}
			return d, true
		}
	}
	return 0, false
}

func retryAfterMillis(h http.Header, name string) (time.Duration, bool) {
	v := h.Get(name)
	if v == "" {
		return 0, false
	}
	ms, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

// IsValidStatusCode reports whether code is one of the status codes ARM
// permits as an initial LRO response (spec.md §4.4).
func IsValidStatusCode(code int) bool {
	switch code {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return true
	default:
		return false
	}
}

// IsNonTerminalHTTPStatusCode reports whether code is a transient failure
// the Location handler should treat as "keep polling" rather than "failed"
// (spec.md §4.4, §4.6.3 step 4).
func IsNonTerminalHTTPStatusCode(code int) bool {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
