package azcoretest

import (
	"io"
	"net/http"
	"strings"
)

// JSON builds a Responder returning statusCode with body as a JSON payload
// and the given extra headers (name/value pairs).
func JSON(statusCode int, body string, headers ...string) Responder {
	return func(req *http.Request) (*http.Response, error) {
		h := make(http.Header)
		h.Set("Content-Type", "application/json")
		for i := 0; i+1 < len(headers); i += 2 {
			h.Set(headers[i], headers[i+1])
		}
		return &http.Response{
			StatusCode: statusCode,
			Header:     h,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

// Empty builds a Responder returning statusCode with no body.
func Empty(statusCode int, headers ...string) Responder {
	return JSON(statusCode, "", headers...)
}
