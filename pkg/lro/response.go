package lro

import (
	"io"
	"net/http"
)

// Response is an immutable snapshot of an HTTP response: status code,
// headers, and a fully-buffered body. Once constructed it is cheap to
// share by value or pointer; the body is never re-read from the wire.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// RequestMethod and RequestURL capture the request that produced this
	// Response, so a handler's result() can resolve "origin URL"/"origin
	// method" (spec.md §4.6.1-2) without threading the original
	// *http.Request through every poll.
	RequestMethod string
	RequestURL    string
}

// NewResponse fully drains resp.Body into memory and closes it. Failures
// collecting the body are transport errors, not LRO failures; callers
// should wrap the returned error as TransportError.
func NewResponse(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	r := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}
	if resp.Request != nil {
		r.RequestMethod = resp.Request.Method
		r.RequestURL = resp.Request.URL.String()
	}
	return r, nil
}

// HeaderValue does a case-insensitive lookup of the named header, returning
// ("", false) if absent. http.Header already canonicalizes keys on Get, but
// this makes the case-insensitivity contract (spec.md §4.3, §6.2) explicit
// at call sites that care.
func (r *Response) HeaderValue(name string) (string, bool) {
	if r == nil || r.Header == nil {
		return "", false
	}
	v := r.Header.Get(name)
	if v == "" {
		return "", false
	}
	return v, true
}

// AsError converts the Response into a structured error, parsing the body
// as an ARM error document when possible and falling back to the raw body
// otherwise. It never returns nil.
func (r *Response) AsError() error {
	return NewAzureError(r.StatusCode, r.Body)
}
