// Package azcoretest provides a scripted policy.Transporter for exercising
// pkg/lro and pkg/azapi without a live ARM endpoint, standing in for azd's
// unexported test/mocks/mockhttp round-tripper.
package azcoretest

import (
	"fmt"
	"net/http"
	"sync"
)

// Responder builds the *http.Response for one matched request. The request
// is passed through as received; Transport does not read its body.
type Responder func(req *http.Request) (*http.Response, error)

// Route matches requests by method and a predicate over the URL, then hands
// matching requests to Responses in order; once exhausted, the last one is
// reused for every subsequent matching request (servers keep answering the
// same poll URL the same way once an operation is terminal).
type Route struct {
	Method    string
	Match     func(url string) bool
	Responses []Responder

	calls int
}

// Transport is a policy.Transporter that dispatches to the first Route
// matching each request, in registration order.
type Transport struct {
	mu     sync.Mutex
	routes []*Route
}

// NewTransport returns an empty Transport; callers register routes with Add.
func NewTransport() *Transport {
	return &Transport{}
}

// Add registers r and returns the Transport for chaining.
func (t *Transport) Add(r *Route) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.routes = append(t.routes, r)
	return t
}

// Do implements policy.Transporter.
func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range t.routes {
		if r.Method != "" && r.Method != req.Method {
			continue
		}
		if r.Match != nil && !r.Match(req.URL.String()) {
			continue
		}
		idx := r.calls
		if idx >= len(r.Responses) {
			idx = len(r.Responses) - 1
		}
		r.calls++
		resp, err := r.Responses[idx](req)
		if err != nil {
			return nil, err
		}
		resp.Request = req
		return resp, nil
	}
	return nil, fmt.Errorf("azcoretest: no route matched %s %s", req.Method, req.URL.String())
}

// CallCount reports how many times r has been invoked.
func (r *Route) CallCount() int { return r.calls }
