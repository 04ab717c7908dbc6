// Package httputil holds small net/http helpers for callers outside the
// façade, mirroring azd's pkg/httputil.
package httputil

import (
	"encoding/json"
	"io"
	"net/http"
)

// ReadRawResponse fully reads resp.Body, closes it, and unmarshals it as a
// T. It is for callers that talk to a JSON status endpoint directly
// rather than through the lro package's byte-oriented Response.
func ReadRawResponse[T any](resp *http.Response) (*T, error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
